package compguide

import "fmt"

// GuideKind identifies one composition guide geometry.
type GuideKind int

// Guide kinds.
const (
	GoldenRectangle GuideKind = iota
	GoldenSpiral
	GoldenSpiralSection
	GoldenTriangles
	GoldenDiagonals
	GoldenSection
	RuleOfThirds
	BasicCross
	BasicDiagonals
	BasicDiamond
	BasicQuarters
	DynamicSymmetry
	DynamicSymmetryGolden
	ReciprocalLines
	ReciprocalLinesGolden

	numKinds
)

// KindInfo is the static metadata attached to a guide kind.
//
// Accepted lists the options the guide honours, Forced the ones always
// applied and Defaults the ones a caller should pre-select when the guide
// is first chosen.
type KindInfo struct {
	Tag      string
	Label    string
	Accepted OptionSet
	Forced   OptionSet
	Defaults OptionSet
}

var (
	flips       = NewOptionSet(FlipHorizontal, FlipVertical)
	selection   = NewOptionSet(UseSelectionBounds)
	goldenRatio = NewOptionSet(ForceGoldenRatio)
)

var kindTable = [numKinds]KindInfo{
	GoldenRectangle: {
		Tag: "goldrect", Label: "Golden rectangle",
		Accepted: selection, Forced: goldenRatio,
	},
	GoldenSpiral: {
		Tag: "goldspi", Label: "Golden spiral",
		Accepted: flips.Union(selection), Forced: goldenRatio,
	},
	GoldenSpiralSection: {
		Tag: "goldspisec", Label: "Golden spiral section",
		Accepted: flips.Union(selection), Forced: goldenRatio,
	},
	GoldenTriangles: {
		Tag: "goldspetr", Label: "Golden triangles",
		Accepted: goldenRatio.Union(flips).Union(selection), Defaults: goldenRatio,
	},
	GoldenDiagonals: {
		Tag: "goldspidiag", Label: "Golden diagonals",
		Accepted: goldenRatio.Union(selection),
	},
	GoldenSection: {
		Tag: "goldsec", Label: "Golden section",
		Accepted: goldenRatio.Union(selection),
	},
	RuleOfThirds: {
		Tag: "ro3", Label: "Rule of thirds",
		Accepted: goldenRatio.Union(selection),
	},
	BasicCross: {
		Tag: "bascross", Label: "Central cross",
		Accepted: selection,
	},
	BasicDiagonals: {
		Tag: "basdiag", Label: "Diagonals",
		Accepted: goldenRatio.Union(selection),
	},
	BasicDiamond: {
		Tag: "basdiamond", Label: "Diamond",
		Accepted: goldenRatio.Union(selection),
	},
	BasicQuarters: {
		Tag: "basquarters", Label: "Quarters",
		Accepted: goldenRatio.Union(selection),
	},
	DynamicSymmetry: {
		Tag: "dynsym", Label: "Dynamic symmetry (rule of thirds)",
		Accepted: goldenRatio.Union(selection),
	},
	DynamicSymmetryGolden: {
		Tag: "dynsymgs", Label: "Dynamic symmetry (golden section)",
		Accepted: goldenRatio.Union(selection),
	},
	ReciprocalLines: {
		Tag: "reciproclines", Label: "Reciprocal lines (rule of thirds)",
		Accepted: goldenRatio.Union(selection),
	},
	ReciprocalLinesGolden: {
		Tag: "reciproclinesgs", Label: "Reciprocal lines (golden section)",
		Accepted: goldenRatio.Union(selection),
	},
}

// Kinds returns every guide kind in display order.
func Kinds() []GuideKind {
	kinds := make([]GuideKind, 0, numKinds)
	for k := GuideKind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseGuideKind returns the kind with the given tag.
func ParseGuideKind(tag string) (GuideKind, error) {
	for k, info := range kindTable {
		if info.Tag == tag {
			return GuideKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGuideKind, tag)
}

// Valid reports whether k is one of the declared kinds.
func (k GuideKind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Info returns the metadata of k.
func (k GuideKind) Info() (KindInfo, error) {
	if !k.Valid() {
		return KindInfo{}, fmt.Errorf("%w: %d", ErrUnknownGuideKind, int(k))
	}
	return kindTable[k], nil
}

func (k GuideKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("GuideKind(%d)", int(k))
	}
	return kindTable[k].Tag
}

// Label returns the display label of k.
func (k GuideKind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindTable[k].Label
}

// Accepted returns the options k honours, forced ones included.
func (k GuideKind) Accepted() OptionSet {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].Accepted.Union(kindTable[k].Forced)
}

// Forced returns the options always applied to k.
func (k GuideKind) Forced() OptionSet {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].Forced
}

// Defaults returns the options pre-selected when k is first chosen.
func (k GuideKind) Defaults() OptionSet {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].Defaults
}

// Effective returns the options Render applies for k: the accepted subset
// of opts plus the forced options.
func Effective(k GuideKind, opts OptionSet) OptionSet {
	return opts.Intersect(k.Accepted()).Union(k.Forced())
}
