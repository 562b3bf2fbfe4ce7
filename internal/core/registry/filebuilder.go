package registry

// FileBuilder accumulates the files one artifact family (contracts,
// validators, services, ...) has produced so far, registering every path
// through the shared FilePathRegistry before the content is stored.
type FileBuilder struct {
	family   string
	registry *FilePathRegistry
	files    map[string]string
	order    []string
}

func NewFileBuilder(family string, registry *FilePathRegistry) *FileBuilder {
	return &FileBuilder{family: family, registry: registry, files: make(map[string]string)}
}

// AddFile validates path through the registry and, on success, stores
// content under its canonical form. Re-adding the same canonical path from
// the same source overwrites the content without changing its position in
// OrderedPaths.
func (b *FileBuilder) AddFile(path, content, source, model string) error {
	canonical := Canonicalize(path)
	if err := b.registry.Register(canonical, source, model); err != nil {
		return err
	}
	if _, exists := b.files[canonical]; !exists {
		b.order = append(b.order, canonical)
	}
	b.files[canonical] = content
	return nil
}

// Files returns a defensive copy of every canonical path to its content.
func (b *FileBuilder) Files() map[string]string {
	out := make(map[string]string, len(b.files))
	for k, v := range b.files {
		out[k] = v
	}
	return out
}

// OrderedPaths returns every canonical path in the order it was first
// added, for deterministic iteration.
func (b *FileBuilder) OrderedPaths() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

type fileBuilderSnapshot struct {
	files map[string]string
	order []string
}

func (b *FileBuilder) snapshot() fileBuilderSnapshot {
	return fileBuilderSnapshot{files: b.Files(), order: b.OrderedPaths()}
}

func (b *FileBuilder) restore(s fileBuilderSnapshot) {
	files := make(map[string]string, len(s.files))
	for k, v := range s.files {
		files[k] = v
	}
	order := make([]string, len(s.order))
	copy(order, s.order)
	b.files = files
	b.order = order
}

// GeneratedFilesBuilder composes one FileBuilder per artifact family behind
// a single shared FilePathRegistry, so a collision between two families
// (e.g. a controller and a route claiming the same path) is still caught.
type GeneratedFilesBuilder struct {
	registry    *FilePathRegistry
	builders    map[string]*FileBuilder
	familyOrder []string
}

func NewGeneratedFilesBuilder(registry *FilePathRegistry) *GeneratedFilesBuilder {
	return &GeneratedFilesBuilder{registry: registry, builders: make(map[string]*FileBuilder)}
}

// AddFile routes content to family's FileBuilder, creating it on first use.
func (g *GeneratedFilesBuilder) AddFile(family, path, content, source, model string) error {
	b, ok := g.builders[family]
	if !ok {
		b = NewFileBuilder(family, g.registry)
		g.builders[family] = b
		g.familyOrder = append(g.familyOrder, family)
	}
	return b.AddFile(path, content, source, model)
}

// Family returns the FileBuilder for a family, creating it empty if it
// does not exist yet — used by phases that want to inspect their own
// output before the run finishes.
func (g *GeneratedFilesBuilder) Family(family string) *FileBuilder {
	b, ok := g.builders[family]
	if !ok {
		b = NewFileBuilder(family, g.registry)
		g.builders[family] = b
		g.familyOrder = append(g.familyOrder, family)
	}
	return b
}

// AllFiles flattens every family's files into one canonical-path-to-
// content map. The map has no order; callers that want a deterministic
// listing iterate OrderedPaths and look each path up here.
func (g *GeneratedFilesBuilder) AllFiles() map[string]string {
	out := make(map[string]string)
	for _, family := range g.familyOrder {
		for path, content := range g.builders[family].Files() {
			out[path] = content
		}
	}
	return out
}

// OrderedPaths returns every canonical path across all families, family
// order first and insertion order within a family, mirroring AllFiles.
func (g *GeneratedFilesBuilder) OrderedPaths() []string {
	var out []string
	for _, family := range g.familyOrder {
		out = append(out, g.builders[family].OrderedPaths()...)
	}
	return out
}

// BuilderSnapshot is an opaque copy of every family's file state.
type BuilderSnapshot struct {
	families    map[string]fileBuilderSnapshot
	familyOrder []string
}

// Snapshot captures every family's current file state for later Restore.
func (g *GeneratedFilesBuilder) Snapshot() BuilderSnapshot {
	families := make(map[string]fileBuilderSnapshot, len(g.builders))
	for name, b := range g.builders {
		families[name] = b.snapshot()
	}
	order := make([]string, len(g.familyOrder))
	copy(order, g.familyOrder)
	return BuilderSnapshot{families: families, familyOrder: order}
}

// Restore replaces every family's state with a previously captured
// snapshot, discarding any family or file added since, and dropping
// families that did not exist at snapshot time.
func (g *GeneratedFilesBuilder) Restore(s BuilderSnapshot) {
	builders := make(map[string]*FileBuilder, len(s.families))
	for name, fb := range s.families {
		b := NewFileBuilder(name, g.registry)
		b.restore(fb)
		builders[name] = b
	}
	order := make([]string, len(s.familyOrder))
	copy(order, s.familyOrder)

	g.builders = builders
	g.familyOrder = order
}
