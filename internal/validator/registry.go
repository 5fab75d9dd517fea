package validator

// Registry holds rules in registration order. Rule order is part of the
// engine's contract: codes are emitted in the order their rules were
// registered, so the registry must stay deterministic.
type Registry struct {
	rules      []Rule
	batchRules []BatchRule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a per-invoice rule.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// RegisterBatch appends a batch-level rule. Batch rules always run after
// every per-invoice rule.
func (r *Registry) RegisterBatch(rule BatchRule) {
	r.batchRules = append(r.batchRules, rule)
}

// Rules returns the per-invoice rules in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// BatchRules returns the batch-level rules in registration order.
func (r *Registry) BatchRules() []BatchRule {
	return r.batchRules
}
