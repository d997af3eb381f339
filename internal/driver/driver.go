// Package driver orchestrates loading, validation and encoding of
// signature files for the CLI. Files are independent, so directory runs
// validate them in parallel with one diagnostic bag per file.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rootsig/internal/diag"
	"rootsig/internal/metadata"
	"rootsig/internal/sigfile"
	"rootsig/internal/validate"
)

// FileResult is the outcome of validating one signature file.
type FileResult struct {
	Path string
	Sig  *sigfile.Signature
	Bag  *diag.Bag
}

// listSigFiles returns all *.toml files under dir, sorted for a
// deterministic processing order.
func listSigFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".toml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ValidateFile loads one signature file and runs binding validation.
func ValidateFile(path string, maxDiagnostics int) (*FileResult, error) {
	sig, err := sigfile.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	validate.RootElements(path, sig.Elements, diag.BagReporter{Bag: bag})
	bag.Sort()
	return &FileResult{Path: path, Sig: sig, Bag: bag}, nil
}

// ValidateDir validates every *.toml file under dir, up to jobs files at a
// time (0 = number of CPUs). Results follow the sorted file order.
func ValidateDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]FileResult, error) {
	files, err := listSigFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ValidateFile(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]FileResult, len(results))
	for i, res := range results {
		out[i] = *res
	}
	return out, nil
}

// EncodeMsgpack builds the signature's metadata tree as a msgpack document.
func EncodeMsgpack(sig *sigfile.Signature) ([]byte, error) {
	builder := metadata.NewBuilder[[]byte](metadata.MsgpackStore{})
	return builder.BuildRootSignature(sig.Elements)
}

// EncodeText builds the metadata tree and renders it as indented text.
func EncodeText(sig *sigfile.Signature) (string, error) {
	builder := metadata.NewBuilder[*metadata.TreeNode](metadata.TreeStore{})
	root, err := builder.BuildRootSignature(sig.Elements)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	root.WriteText(&sb)
	return sb.String(), nil
}
