// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ManuGH/spielplan/internal/normalize"
)

// SectionPolicy selects how section header lines are recognized.
type SectionPolicy string

const (
	// PolicyStrict accepts only lines equal to a configured section name.
	PolicyStrict SectionPolicy = "strict"
	// PolicyKeyword accepts any line containing a configured category keyword.
	PolicyKeyword SectionPolicy = "keyword"
)

// DefaultNoFixture is the kickoff text the association prints for bye rounds.
const DefaultNoFixture = "SPIELFREI"

// DefaultFragmentLen bounds the pairing text that goes into a record ID.
const DefaultFragmentLen = 60

// FieldRule suggests Field when the venue contains every substring in All.
type FieldRule struct {
	Field Field    `yaml:"field" json:"field"`
	All   []string `yaml:"all" json:"all"`
}

// Options is the club profile a Parser is built from.
type Options struct {
	// Variants lists every spelling of the home club, including joint-team forms.
	Variants []string
	// Fields is the ordered set of fields a record may be assigned to.
	Fields []Field
	// HomeGrounds are venue phrases naming the club's own sports ground.
	HomeGrounds []string
	// Pitches maps "Platz N" numbers on the home ground to fields.
	Pitches map[int]Field
	// DefaultPitch is used on the home ground when no known pitch number is given.
	DefaultPitch Field
	// FieldRules are checked in order before the home ground.
	FieldRules []FieldRule

	SectionPolicy SectionPolicy
	// Sections are the exact header names used by PolicyStrict.
	Sections []string
	// SectionKeywords are regexp fragments used by PolicyKeyword.
	SectionKeywords []string

	// MatchTypes are the two-letter codes that open a fixture row.
	MatchTypes []string
	// SkipPatterns are regexps for boilerplate lines never taken as venue text.
	SkipPatterns []string

	NoFixture   string
	FragmentLen int
}

// profile is the compiled, read-only form of Options.
type profile struct {
	variants []string // longest first

	fields       []Field
	fieldSet     map[Field]struct{}
	homeGrounds  []string
	pitches      map[int]Field
	defaultPitch Field
	rules        []FieldRule

	policy    SectionPolicy
	sections  map[string]struct{}
	keywordRe *regexp.Regexp

	rowStartRe *regexp.Regexp
	rowRe      *regexp.Regexp
	datedRe    *regexp.Regexp
	skip       []*regexp.Regexp

	noFixture    string
	noFixtureKey string // noFixture as normalize.Token
	fragmentLen  int
}

const (
	datePattern = `(\d{2}\.\d{2}\.\d{4})`
	timePattern = `\d{1,2}:\d{2}`
)

func compile(opts Options) (*profile, error) {
	p := &profile{
		fieldSet:    make(map[Field]struct{}),
		pitches:     make(map[int]Field),
		sections:    make(map[string]struct{}),
		noFixture:   normalize.Space(opts.NoFixture),
		fragmentLen: opts.FragmentLen,
		policy:      opts.SectionPolicy,
	}
	if p.noFixture == "" {
		p.noFixture = DefaultNoFixture
	}
	p.noFixtureKey = normalize.Token(p.noFixture)
	if p.fragmentLen <= 0 {
		p.fragmentLen = DefaultFragmentLen
	}
	if p.policy == "" {
		p.policy = PolicyStrict
	}

	for _, v := range opts.Variants {
		if v = normalize.Space(v); v != "" {
			p.variants = append(p.variants, v)
		}
	}
	if len(p.variants) == 0 {
		return nil, ErrNoVariants
	}
	// Stable so equally long spellings keep their configured order.
	sort.SliceStable(p.variants, func(i, j int) bool {
		return len(p.variants[i]) > len(p.variants[j])
	})

	for _, f := range opts.Fields {
		if f == NoField {
			continue
		}
		if _, dup := p.fieldSet[f]; dup {
			continue
		}
		p.fieldSet[f] = struct{}{}
		p.fields = append(p.fields, f)
	}
	if len(p.fields) == 0 {
		return nil, ErrNoFields
	}

	for _, g := range opts.HomeGrounds {
		if g = normalize.Fold(normalize.Space(g)); g != "" {
			p.homeGrounds = append(p.homeGrounds, g)
		}
	}
	for n, f := range opts.Pitches {
		if err := p.knownField(f); err != nil {
			return nil, fmt.Errorf("pitch %d: %w", n, err)
		}
		p.pitches[n] = f
	}
	if opts.DefaultPitch != NoField {
		if err := p.knownField(opts.DefaultPitch); err != nil {
			return nil, fmt.Errorf("default pitch: %w", err)
		}
	}
	p.defaultPitch = opts.DefaultPitch
	if p.defaultPitch == NoField {
		p.defaultPitch = p.pitches[1]
	}

	for i, r := range opts.FieldRules {
		if err := p.knownField(r.Field); err != nil {
			return nil, fmt.Errorf("field rule %d: %w", i, err)
		}
		rule := FieldRule{Field: r.Field}
		for _, s := range r.All {
			if s = normalize.Fold(normalize.Space(s)); s != "" {
				rule.All = append(rule.All, s)
			}
		}
		if len(rule.All) == 0 {
			return nil, fmt.Errorf("field rule %d (%s): no substrings", i, r.Field)
		}
		p.rules = append(p.rules, rule)
	}

	if err := p.compileSections(opts); err != nil {
		return nil, err
	}
	if err := p.compileRows(opts.MatchTypes); err != nil {
		return nil, err
	}

	for _, pat := range opts.SkipPatterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, fmt.Errorf("%w: skip pattern %q: %v", ErrBadPattern, pat, err)
		}
		p.skip = append(p.skip, re)
	}
	return p, nil
}

func (p *profile) knownField(f Field) error {
	if _, ok := p.fieldSet[f]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

func (p *profile) compileSections(opts Options) error {
	switch p.policy {
	case PolicyStrict:
		for _, s := range opts.Sections {
			if s = normalize.Fold(normalize.Space(s)); s != "" {
				p.sections[s] = struct{}{}
			}
		}
	case PolicyKeyword:
		var parts []string
		for _, kw := range opts.SectionKeywords {
			if kw = strings.TrimSpace(kw); kw == "" {
				continue
			}
			if _, err := regexp.Compile(kw); err != nil {
				return fmt.Errorf("%w: section keyword %q: %v", ErrBadPattern, kw, err)
			}
			parts = append(parts, "(?:"+kw+")")
		}
		if len(parts) == 0 {
			return fmt.Errorf("%w: keyword policy needs at least one keyword", ErrInvalidPolicy)
		}
		// Letters and digits on either side would mean the keyword is part of a longer word.
		expr := `(?i)(?:^|[^\p{L}\p{N}])(?:` + strings.Join(parts, "|") + `)(?:$|[^\p{L}\p{N}])`
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("%w: section keywords: %v", ErrBadPattern, err)
		}
		p.keywordRe = re
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, p.policy)
	}
	return nil
}

func (p *profile) compileRows(codes []string) error {
	var quoted []string
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			quoted = append(quoted, regexp.QuoteMeta(c))
		}
	}
	if len(quoted) == 0 {
		return ErrNoMatchTypes
	}
	alt := strings.Join(quoted, "|")
	sentinel := "(?i:" + regexp.QuoteMeta(p.noFixture) + ")"

	p.rowStartRe = regexp.MustCompile(`^(` + alt + `) `)
	p.rowRe = regexp.MustCompile(`^(.+?) ` + datePattern + ` (` + timePattern + `|` + sentinel + `) (.+)$`)
	p.datedRe = regexp.MustCompile(`^(.+?) ` + datePattern + ` (.+)$`)
	return nil
}
