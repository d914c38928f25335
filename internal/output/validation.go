// internal/output/validation.go
package output

import (
	"edeck-core/deck"
	"edeck/pkg/api"
)

// ToValidation summarizes a parsed table into the wire schema.
func ToValidation(tab *deck.Table, onGrid bool) api.ValidationV1 {
	rep := api.ValidationV1{
		Deck:   tab.Name,
		Rows:   tab.NumRows(),
		OnGrid: onGrid,
	}
	for _, v := range tab.Columns {
		rep.Columns = append(rep.Columns, api.ColumnV1{
			Name:        v.String(),
			Key:         v.Key(),
			Unit:        v.DefaultUnit(),
			Independent: v.Independent(),
		})
	}
	for _, v := range tab.Independents() {
		lo, hi, ok := tab.Bounds(v)
		if !ok {
			continue
		}
		rep.Envelope = append(rep.Envelope, api.AxisRangeV1{Key: v.Key(), Min: lo, Max: hi})
	}
	for _, w := range tab.Warnings {
		rep.Warnings = append(rep.Warnings, w.String())
	}
	return rep
}
