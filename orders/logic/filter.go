package logic

import "strings"

// Filter keeps orders whose customer, id or product contains search
// (case-insensitive) and whose status equals status. A blank status or
// "all" matches every status. Order is preserved.
func Filter(orders []Order, search, status string) []Order {
	needle := strings.ToLower(strings.TrimSpace(search))
	wanted := strings.TrimSpace(status)
	anyStatus := wanted == "" || strings.EqualFold(wanted, FilterAll)

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if needle != "" &&
			!strings.Contains(strings.ToLower(o.Customer), needle) &&
			!strings.Contains(strings.ToLower(o.ID), needle) &&
			!strings.Contains(strings.ToLower(o.Product), needle) {
			continue
		}
		if !anyStatus && !strings.EqualFold(string(o.Status), wanted) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// StatusCount is one filter tab.
type StatusCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountByStatus returns the "all" tab followed by one tab per status.
func CountByStatus(orders []Order) []StatusCount {
	counts := make(map[Status]int, len(Statuses()))
	for _, o := range orders {
		counts[o.Status]++
	}

	tabs := []StatusCount{{Value: FilterAll, Label: "All Orders", Count: len(orders)}}
	for _, s := range Statuses() {
		tabs = append(tabs, StatusCount{
			Value: strings.ToLower(string(s)),
			Label: string(s),
			Count: counts[s],
		})
	}
	return tabs
}
