package site

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// stageVerify hashes the produced output set into the report manifest.
// The manifest hash is the fingerprint of the whole site: unchanged
// inputs must produce an unchanged hash (builds are idempotent).
func stageVerify(_ context.Context, bs *BuildState) error {
	manifest := make(map[string]string, len(bs.Files))
	paths := make([]string, 0, len(bs.Files))
	for p, data := range bs.Files {
		sum := sha256.Sum256(data)
		manifest[p] = hex.EncodeToString(sum[:])
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&b, "%s  %s\n", manifest[p], p)
	}
	total := sha256.Sum256([]byte(b.String()))

	bs.Report.Manifest = manifest
	bs.Report.ManifestHash = hex.EncodeToString(total[:])
	return nil
}
