package contentful

// The Delivery API ships linked assets and entries as {"sys": {"type":
// "Link", ...}} stubs with the real records in the response's includes block.
// The normalizer expects nested records inline, the way SDK clients deliver
// them, so stubs are substituted before normalization.

func buildRefs(groups ...[]rawRecord) map[string]map[string]any {
	refs := make(map[string]map[string]any)
	for _, group := range groups {
		for _, rec := range group {
			if rec.Sys.ID == "" {
				continue
			}
			refs[rec.Sys.ID] = map[string]any{"fields": rec.Fields}
		}
	}
	return refs
}

// resolveLinks walks a decoded field value and substitutes link stubs with
// their included records. Substituted records are not walked again, so entry
// cycles cannot recurse. A stub with no matching include resolves to nil,
// which the normalizer treats as absent.
func resolveLinks(v any, refs map[string]map[string]any) any {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := linkID(t); ok {
			if rec, ok := refs[id]; ok {
				return rec
			}
			return nil
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = resolveLinks(val, refs)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = resolveLinks(el, refs)
		}
		return out
	default:
		return v
	}
}

func linkID(m map[string]any) (string, bool) {
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return "", false
	}
	if typ, _ := sys["type"].(string); typ != "Link" {
		return "", false
	}
	id, _ := sys["id"].(string)
	return id, id != ""
}
