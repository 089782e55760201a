// Package matcher implements the rule-based component selection engine.
//
// Select is a pure, total function from a PRD to a SelectionSet: it performs
// no I/O, never fails, and for equal inputs produces identical output
// sequences on every call. Unrecognized languages, frameworks, and infra tags
// simply contribute nothing.
//
// Rules evaluate in a fixed order: always-included components first, then
// language-derived, then framework-conditional, then infra-derived (skills)
// or type-derived (agents, commands). An explicit skills/agents override in
// the PRD replaces auto-matching for that kind entirely; commands have no
// override and are always matched by project type.
package matcher

import (
	"fmt"
	"strings"

	"github.com/pabloism0x/kael/internal/catalog"
	"github.com/pabloism0x/kael/internal/prd"
)

// Origin labels recorded per selected identifier. The renderer includes them
// in unknown-component errors so users can tell which rule or override put a
// bad identifier into the selection.
const (
	originAlways         = "always-included defaults"
	originSkillsOverride = "skills override"
	originAgentsOverride = "agents override"
)

// Always-included defaults, independent of the PRD.
var (
	baseSkills = []string{"_common/git-workflow", "_common/ci-cd"}
	baseAgents = []string{"_base/architect", "_base/reviewer"}
)

// languageSkills maps stack.language to skill identifiers.
var languageSkills = map[string][]string{
	prd.LanguageRust: {
		"rust/async-patterns",
		"rust/error-handling",
		"rust/memory-optimization",
	},
	prd.LanguageTypescript: {
		"typescript/react-patterns",
		"typescript/testing",
	},
	prd.LanguagePython: {
		"python/fastapi",
		"python/ml-ops",
	},
	prd.LanguageGo: {
		"go/api-patterns",
		"go/concurrency",
		"go/testing",
	},
}

// languageAgents maps stack.language to agent identifiers.
var languageAgents = map[string][]string{
	prd.LanguageRust: {
		"rust/perf-engineer",
		"rust/runtime-expert",
		"rust/unsafe-auditor",
	},
	prd.LanguageTypescript: {
		"typescript/node-expert",
	},
	prd.LanguagePython: {
		"python/backend-expert",
		"python/ml-engineer",
		"python/data-engineer",
	},
	prd.LanguageGo: {
		"go/systems-expert",
		"go/api-expert",
	},
}

// frameworkSkills and frameworkAgents add identifiers on top of the
// language-derived sets for specific (language, framework) pairs. Framework
// names are matched case-insensitively.
var frameworkSkills = map[string]map[string][]string{
	prd.LanguageTypescript: {
		"nextjs": {"typescript/nextjs"},
	},
}

var frameworkAgents = map[string]map[string][]string{
	prd.LanguageTypescript: {
		"nextjs": {"typescript/fullstack-expert", "typescript/react-expert"},
	},
}

// infraSkills maps stack.infra tags to skill identifiers.
var infraSkills = map[string]string{
	"docker":         "infra/docker",
	"kubernetes":     "infra/kubernetes",
	"github-actions": "infra/github-actions",
}

// typeAgents maps the project type to additional agent identifiers.
var typeAgents = map[string][]string{
	prd.TypeCli:     {"_base/debugger"},
	prd.TypeLibrary: {"_base/docs-writer"},
	prd.TypeApi:     {"_base/docs-writer", "_base/test-architect"},
	prd.TypeWeb:     {"_base/ui-developer"},
	prd.TypeMobile:  {"_base/ui-developer"},
}

// typeCommands maps the project type to its full command selection. Commands
// are matched by type alone; there is no command override.
var typeCommands = map[string][]string{
	prd.TypeCli:     {"init", "review", "commit", "test", "release"},
	prd.TypeLibrary: {"init", "review", "commit", "test", "release"},
	prd.TypeApi:     {"init", "review", "commit", "test"},
	prd.TypeWeb:     {"init", "review", "commit", "test"},
	prd.TypeMobile:  {"init", "review", "commit", "test"},
}

// mode is the per-kind selection mode, resolved once before rule evaluation.
type mode struct {
	override []string
	auto     bool
}

func resolveMode(override *[]string) mode {
	if override == nil {
		return mode{auto: true}
	}
	return mode{override: *override}
}

// Select computes the SelectionSet for a PRD.
func Select(p *prd.PRD) *SelectionSet {
	sel := newSelectionSet()

	skillMode := resolveMode(p.Skills)
	agentMode := resolveMode(p.Agents)

	if skillMode.auto {
		selectSkills(sel, p)
	} else {
		for _, id := range skillMode.override {
			sel.add(catalog.KindSkill, id, originSkillsOverride)
		}
	}

	if agentMode.auto {
		selectAgents(sel, p)
	} else {
		for _, id := range agentMode.override {
			sel.add(catalog.KindAgent, id, originAgentsOverride)
		}
	}

	for _, id := range typeCommands[p.Type] {
		sel.add(catalog.KindCommand, id, originType(p.Type))
	}

	return sel
}

func selectSkills(sel *SelectionSet, p *prd.PRD) {
	for _, id := range baseSkills {
		sel.add(catalog.KindSkill, id, originAlways)
	}
	for _, id := range languageSkills[p.Stack.Language] {
		sel.add(catalog.KindSkill, id, originLanguage(p.Stack.Language))
	}
	for _, id := range frameworkAdditions(frameworkSkills, p.Stack.Language, p.Stack.Framework) {
		sel.add(catalog.KindSkill, id, originFramework(p.Stack.Language, p.Stack.Framework))
	}
	for _, tag := range p.Stack.Infra {
		if id, ok := infraSkills[tag]; ok {
			sel.add(catalog.KindSkill, id, originInfra(tag))
		}
	}
}

func selectAgents(sel *SelectionSet, p *prd.PRD) {
	for _, id := range baseAgents {
		sel.add(catalog.KindAgent, id, originAlways)
	}
	for _, id := range languageAgents[p.Stack.Language] {
		sel.add(catalog.KindAgent, id, originLanguage(p.Stack.Language))
	}
	for _, id := range frameworkAdditions(frameworkAgents, p.Stack.Language, p.Stack.Framework) {
		sel.add(catalog.KindAgent, id, originFramework(p.Stack.Language, p.Stack.Framework))
	}
	for _, id := range typeAgents[p.Type] {
		sel.add(catalog.KindAgent, id, originType(p.Type))
	}
}

// frameworkAdditions looks up the (language, framework) pair in a framework
// table. Framework names match case-insensitively; absence of a pair
// contributes nothing.
func frameworkAdditions(table map[string]map[string][]string, language, framework string) []string {
	if framework == "" {
		return nil
	}
	byFramework, ok := table[language]
	if !ok {
		return nil
	}
	return byFramework[strings.ToLower(framework)]
}

func originLanguage(language string) string {
	return fmt.Sprintf("language rule (%s)", language)
}

func originFramework(language, framework string) string {
	return fmt.Sprintf("framework rule (%s/%s)", language, strings.ToLower(framework))
}

func originInfra(tag string) string {
	return fmt.Sprintf("infra rule (%s)", tag)
}

func originType(projectType string) string {
	return fmt.Sprintf("type rule (%s)", projectType)
}
