package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// HintsDir is the conventional folder name holding hints documents both in
// the application bundle and under the user-data directory.
const HintsDir = "Hints"

// Extensions lists the recognised hints document extensions in probe order.
var Extensions = []string{".json", ".yaml", ".yml", ".toml"}

// Provider locates raw hints documents by model name. Exists must be cheap
// (no full read) so preload can skip models that have no document. Load
// reports found=false for an absent document; err is reserved for real I/O
// failures on a document that does exist.
type Provider interface {
	Exists(modelName string) bool
	Load(ctx context.Context, modelName string) (raw []byte, found bool, err error)
}

// FSProvider serves hints documents from a directory inside an fs.FS.
type FSProvider struct {
	fsys fs.FS
	dir  string
}

// NewFSProvider returns a provider rooted at dir within fsys. An empty dir
// means the filesystem root.
func NewFSProvider(fsys fs.FS, dir string) *FSProvider {
	return &FSProvider{fsys: fsys, dir: dir}
}

// NewDirProvider returns a provider reading from a directory on disk.
func NewDirProvider(dir string) *FSProvider {
	return &FSProvider{fsys: os.DirFS(dir)}
}

// Exists implements Provider.
func (p *FSProvider) Exists(modelName string) bool {
	if p == nil || p.fsys == nil {
		return false
	}
	_, ok := p.locate(modelName)
	return ok
}

// Load implements Provider. The context is consulted before the read since
// this is the only suspending step on the resolution path.
func (p *FSProvider) Load(ctx context.Context, modelName string) ([]byte, bool, error) {
	if p == nil || p.fsys == nil {
		return nil, false, nil
	}
	name, ok := p.locate(modelName)
	if !ok {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, true, err
	}
	raw, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, true, fmt.Errorf("source: read %s: %w", name, err)
	}
	return raw, true, nil
}

func (p *FSProvider) locate(modelName string) (string, bool) {
	if modelName == "" {
		return "", false
	}
	for _, ext := range Extensions {
		name := modelName + ext
		if p.dir != "" {
			name = path.Join(p.dir, name)
		}
		if info, err := fs.Stat(p.fsys, name); err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}

// Chain probes a sequence of providers in order; the first provider that has
// a document for the model wins.
type Chain []Provider

// NewBundleChain assembles the conventional lookup order: the bundle's
// "Hints" subfolder, the bundle root, then the user-data "Hints" folder.
// Either location may be nil/empty and is skipped.
func NewBundleChain(bundle fs.FS, userDataDir string) Chain {
	var chain Chain
	if bundle != nil {
		chain = append(chain, NewFSProvider(bundle, HintsDir), NewFSProvider(bundle, ""))
	}
	if userDataDir != "" {
		chain = append(chain, NewDirProvider(path.Join(userDataDir, HintsDir)))
	}
	return chain
}

// Exists implements Provider.
func (c Chain) Exists(modelName string) bool {
	for _, provider := range c {
		if provider != nil && provider.Exists(modelName) {
			return true
		}
	}
	return false
}

// Load implements Provider.
func (c Chain) Load(ctx context.Context, modelName string) ([]byte, bool, error) {
	for _, provider := range c {
		if provider == nil {
			continue
		}
		raw, found, err := provider.Load(ctx, modelName)
		if found || err != nil {
			return raw, found, err
		}
	}
	return nil, false, nil
}
