package inventory

import "strings"

// SearchFilters describe the optional criteria for the vehicle search. A nil
// pointer (or false flag) contributes nothing to the query.
type SearchFilters struct {
	ModelID       *int64 `json:"model_id,omitempty"`
	DealershipID  *int64 `json:"dealership_id,omitempty"`
	AvailableOnly bool   `json:"available_only,omitempty"`
}

// Predicate is a single bound filter condition. Expr always carries a
// placeholder; values never appear in query text.
type Predicate struct {
	Expr string
	Arg  any
}

// Predicates maps the filters to their conjoined predicates. The function is
// pure: absent filters are simply omitted, never turned into match-anything
// conditions.
func (f SearchFilters) Predicates() []Predicate {
	var preds []Predicate
	if f.ModelID != nil {
		preds = append(preds, Predicate{Expr: "v.model_id = ?", Arg: *f.ModelID})
	}
	if f.DealershipID != nil {
		preds = append(preds, Predicate{Expr: "v.dealership_id = ?", Arg: *f.DealershipID})
	}
	if f.AvailableOnly {
		preds = append(preds, Predicate{Expr: "v.available = ?", Arg: true})
	}
	return preds
}

// whereClause renders predicates into a WHERE fragment plus its bound args.
// Zero predicates yield the empty string.
func whereClause(preds []Predicate) (string, []any) {
	if len(preds) == 0 {
		return "", nil
	}
	exprs := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		exprs = append(exprs, p.Expr)
		args = append(args, p.Arg)
	}
	return "WHERE " + strings.Join(exprs, " AND "), args
}
