package rootsig

// RootElement is the closed union of declaration elements in a root
// signature stream. Only DescriptorTableClause and DescriptorTable
// implement it; consumers type-switch over both and must fail fast on
// anything else rather than skip it silently.
type RootElement interface {
	isRootElement()
}

func (DescriptorTableClause) isRootElement() {}
func (DescriptorTable) isRootElement()       {}
