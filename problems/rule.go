package problems

import (
	"fmt"
	"strings"
)

// RuleKind identifies the solver rule that made a package unsatisfiable.
// The categories mirror the rule info kinds reported by SAT-based package
// solvers such as libsolv.
type RuleKind int

// Rule kinds. RuleNone means no rule was recorded.
const (
	RuleNone RuleKind = iota
	RulePkg
	RulePkgNotInstallable
	RulePkgNothingProvidesDep
	RulePkgRequires
	RulePkgSelfConflict
	RulePkgConflicts
	RulePkgSameName
	RulePkgObsoletes
	RulePkgImplicitObsoletes
	RulePkgInstalledObsoletes
	RulePkgRecommends
	RulePkgConstrains
	RuleUpdate
	RuleFeature
	RuleJob
	RuleJobNothingProvidesDep
	RuleJobProvidedBySystem
	RuleJobUnknownPackage
	RuleJobUnsupported
	RuleDistupgrade
	RuleInfarch
	RuleChoice
	RuleLearnt
	RuleBest
	RuleYumobs
	RuleBlack
	RuleRecommends
	RuleStrictRepoPriority
)

var ruleNames = [...]string{
	RuleNone:                  "none",
	RulePkg:                   "pkg",
	RulePkgNotInstallable:     "pkg_not_installable",
	RulePkgNothingProvidesDep: "pkg_nothing_provides_dep",
	RulePkgRequires:           "pkg_requires",
	RulePkgSelfConflict:       "pkg_self_conflict",
	RulePkgConflicts:          "pkg_conflicts",
	RulePkgSameName:           "pkg_same_name",
	RulePkgObsoletes:          "pkg_obsoletes",
	RulePkgImplicitObsoletes:  "pkg_implicit_obsoletes",
	RulePkgInstalledObsoletes: "pkg_installed_obsoletes",
	RulePkgRecommends:         "pkg_recommends",
	RulePkgConstrains:         "pkg_constrains",
	RuleUpdate:                "update",
	RuleFeature:               "feature",
	RuleJob:                   "job",
	RuleJobNothingProvidesDep: "job_nothing_provides_dep",
	RuleJobProvidedBySystem:   "job_provided_by_system",
	RuleJobUnknownPackage:     "job_unknown_package",
	RuleJobUnsupported:        "job_unsupported",
	RuleDistupgrade:           "distupgrade",
	RuleInfarch:               "infarch",
	RuleChoice:                "choice",
	RuleLearnt:                "learnt",
	RuleBest:                  "best",
	RuleYumobs:                "yumobs",
	RuleBlack:                 "black",
	RuleRecommends:            "recommends",
	RuleStrictRepoPriority:    "strict_repo_priority",
}

func (k RuleKind) String() string {
	if k >= 0 && int(k) < len(ruleNames) {
		return ruleNames[k]
	}
	return fmt.Sprintf("RuleKind(%d)", int(k))
}

// ParseRuleKind returns the rule kind with the given name. Matching is
// case-insensitive and accepts an optional "SOLVER_RULE_" prefix, so both
// "job_unknown_package" and "SOLVER_RULE_JOB_UNKNOWN_PACKAGE" are valid.
// The empty string parses as RuleNone.
func ParseRuleKind(s string) (RuleKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "solver_rule_")
	if name == "" {
		return RuleNone, nil
	}
	for k, n := range ruleNames {
		if n == name {
			return RuleKind(k), nil
		}
	}
	return RuleNone, fmt.Errorf("unknown rule kind %q", s)
}
