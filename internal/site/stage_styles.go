package site

import (
	"context"

	"git.home.luguber.info/inful/blogsmith/internal/styles"
)

// stylesheetPath is where the compiled stylesheet lands in the output tree.
const stylesheetPath = "assets/site.css"

// stageStyles compiles the stylesheet: site token overrides first, then
// the theme's base module chain, then extension modules, dark-scheme
// overrides and literal rules. A missing module or unmet requirement is
// fatal — the site cannot ship without its stylesheet.
func stageStyles(_ context.Context, bs *BuildState) error {
	program := styles.Program{
		Base:       bs.Theme.Base(),
		Extensions: bs.Theme.Extensions(),
		Rules:      bs.Config.Theme.Rules,
	}
	for _, ov := range bs.Config.Theme.Tokens {
		program.Overrides = append(program.Overrides, styles.Declaration{Token: ov.Token, Value: ov.Value})
	}
	for _, ov := range bs.Config.Theme.Dark {
		program.Dark = append(program.Dark, styles.Declaration{Token: ov.Token, Value: ov.Value})
	}

	compiler, err := styles.Run(bs.Theme.Modules(), program)
	if err != nil {
		return newFatalStageError(stageStylesName, err)
	}

	bs.CSS = []byte(compiler.Emit())
	return bs.AddFile(stylesheetPath, bs.CSS)
}
