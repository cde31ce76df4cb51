package lint

import "sync"

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]Rule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule // keyed by ID
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	RegisterRule(WrapRuleDef(def))
}

// RegisterRule adds a rule to the global registry.
func RegisterRule(rule Rule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// GetAll returns all registered rules.
func GetAll() []Rule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]Rule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (Rule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group.
func GetByGroup(group string) []Rule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []Rule
	for _, rule := range globalRegistry.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllRules returns metadata for all registered rules.
func AllRules() []RuleInfo {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	infos := make([]RuleInfo, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]Rule)
}
