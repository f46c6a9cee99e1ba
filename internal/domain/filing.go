package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilingStatus is the federal filing status of a return
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingJoint           FilingStatus = "mfj"
	FilingSeparate        FilingStatus = "mfs"
	FilingHeadOfHousehold FilingStatus = "hoh"
	FilingSurvivingSpouse FilingStatus = "qss"
)

// filingStatusAliases maps the long-form names accepted in input files to canonical codes
var filingStatusAliases = map[string]FilingStatus{
	"single":                      FilingSingle,
	"mfj":                         FilingJoint,
	"married_filing_jointly":      FilingJoint,
	"joint":                       FilingJoint,
	"mfs":                         FilingSeparate,
	"married_filing_separately":   FilingSeparate,
	"separate":                    FilingSeparate,
	"hoh":                         FilingHeadOfHousehold,
	"head_of_household":           FilingHeadOfHousehold,
	"qss":                         FilingSurvivingSpouse,
	"qw":                          FilingSurvivingSpouse,
	"qualifying_surviving_spouse": FilingSurvivingSpouse,
	"qualifying_widow":            FilingSurvivingSpouse,
}

// ParseFilingStatus resolves a filing status name or alias
func ParseFilingStatus(s string) (FilingStatus, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	if fs, ok := filingStatusAliases[key]; ok {
		return fs, nil
	}
	return "", fmt.Errorf("unknown filing status %q", s)
}

// Valid reports whether f is one of the canonical filing statuses
func (f FilingStatus) Valid() bool {
	switch f {
	case FilingSingle, FilingJoint, FilingSeparate, FilingHeadOfHousehold, FilingSurvivingSpouse:
		return true
	}
	return false
}

// UsesJointThreshold reports whether the excess business loss threshold is the joint amount.
// Its negation is the isSingle flag for Schedule D, Form 461 and Form 172 Part I.
func (f FilingStatus) UsesJointThreshold() bool {
	return f == FilingJoint || f == FilingSurvivingSpouse
}

// BracketStatus returns the status whose bracket rows apply to f
func (f FilingStatus) BracketStatus() FilingStatus {
	if f == FilingSurvivingSpouse {
		return FilingJoint
	}
	return f
}

// UnmarshalYAML accepts any alias known to ParseFilingStatus
func (f *FilingStatus) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw == "" {
		*f = ""
		return nil
	}
	parsed, err := ParseFilingStatus(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
