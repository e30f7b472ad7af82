package view

import "slices"

// VisibleColumns projects the column set through the user's selection. An
// empty selection means all columns. Order always follows the column set;
// selection order is irrelevant.
func VisibleColumns(columns, selection []string) []string {
	if len(selection) == 0 {
		return columns
	}
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if slices.Contains(selection, col) {
			out = append(out, col)
		}
	}
	return out
}

// CanonicalSelection normalizes the checked set before it is stored: nothing
// checked or everything checked both collapse to nil, the canonical
// "show all". Anything else is kept verbatim.
func CanonicalSelection(checked, columns []string) []string {
	if len(checked) == 0 || len(checked) == len(columns) {
		return nil
	}
	return slices.Clone(checked)
}
