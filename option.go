package compguide

import (
	"fmt"
	"strings"
)

// Option is a modifier applied to a guide.
type Option uint8

// Options understood by the engine. UseSelectionBounds only tells the
// caller which area to pass; it has no effect on geometry.
const (
	FlipHorizontal Option = iota
	FlipVertical
	ForceGoldenRatio
	UseSelectionBounds

	numOptions
)

var optionTags = [numOptions]string{
	FlipHorizontal:     "flipH",
	FlipVertical:       "flipV",
	ForceGoldenRatio:   "forceGR",
	UseSelectionBounds: "useSelection",
}

func (o Option) String() string {
	if o < numOptions {
		return optionTags[o]
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// ParseOption returns the option with the given tag.
func ParseOption(tag string) (Option, error) {
	for o, t := range optionTags {
		if t == tag {
			return Option(o), nil
		}
	}
	return 0, fmt.Errorf("unknown option %q", tag)
}

// OptionSet is a set of options. The zero value is the empty set.
type OptionSet uint8

// NewOptionSet returns a set holding opts.
func NewOptionSet(opts ...Option) OptionSet {
	var s OptionSet
	for _, o := range opts {
		s = s.With(o)
	}
	return s
}

// ParseOptionSet parses a comma separated list of option tags. Blank
// entries are skipped.
func ParseOptionSet(list string) (OptionSet, error) {
	var s OptionSet
	for _, tag := range strings.Split(list, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		o, err := ParseOption(tag)
		if err != nil {
			return 0, err
		}
		s = s.With(o)
	}
	return s, nil
}

// Has reports whether o is in the set.
func (s OptionSet) Has(o Option) bool {
	return o < numOptions && s&(1<<o) != 0
}

// With returns the set with o added.
func (s OptionSet) With(o Option) OptionSet {
	if o >= numOptions {
		return s
	}
	return s | 1<<o
}

// Without returns the set with o removed.
func (s OptionSet) Without(o Option) OptionSet {
	if o >= numOptions {
		return s
	}
	return s &^ (1 << o)
}

// Intersect returns the options present in both sets.
func (s OptionSet) Intersect(other OptionSet) OptionSet { return s & other }

// Union returns the options present in either set.
func (s OptionSet) Union(other OptionSet) OptionSet { return s | other }

// Options lists the members of the set in declaration order.
func (s OptionSet) Options() []Option {
	var opts []Option
	for o := Option(0); o < numOptions; o++ {
		if s.Has(o) {
			opts = append(opts, o)
		}
	}
	return opts
}

// Tags lists the tags of the members of the set.
func (s OptionSet) Tags() []string {
	tags := []string{}
	for _, o := range s.Options() {
		tags = append(tags, o.String())
	}
	return tags
}

func (s OptionSet) String() string {
	return strings.Join(s.Tags(), ",")
}

// swapFlips exchanges FlipHorizontal and FlipVertical. Used once the
// problem has been rotated a quarter turn.
func (s OptionSet) swapFlips() OptionSet {
	out := s.Without(FlipHorizontal).Without(FlipVertical)
	if s.Has(FlipHorizontal) {
		out = out.With(FlipVertical)
	}
	if s.Has(FlipVertical) {
		out = out.With(FlipHorizontal)
	}
	return out
}
