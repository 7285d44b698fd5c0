package model

// Flatten projects a nested participant mapping into a single flat Row.
// Nested objects contribute dot-joined column names ("perks.statPerks.
// defense", "challenges.kda"); scalars and arrays are kept as-is under
// their joined name. This matches the column naming the rest of the
// pipeline (deny-list, pattern categories) is written against.
func Flatten(raw RawParticipant) Row {
	row := make(Row, len(raw))
	flattenInto(row, "", map[string]any(raw))
	return row
}

func flattenInto(row Row, prefix string, obj map[string]any) {
	for key, val := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := val.(map[string]any); ok {
			flattenInto(row, name, nested)
			continue
		}
		row[name] = val
	}
}
