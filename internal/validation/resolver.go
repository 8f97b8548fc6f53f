package validation

import (
	"strings"

	"github.com/si-akram/invoice-docai/internal/entity"
)

// ResolvedEntity holds every admitted record sharing one name plus the
// selected best value. Best always has confidence >= every other record in
// the group.
type ResolvedEntity struct {
	Name       string
	Records    []entity.EntityRecord
	Best       entity.EntityRecord
	ValueCount int
}

// Resolution maps entity names to their resolved groups, preserving the
// order in which names were first seen in the input.
type Resolution struct {
	Order  []string
	ByName map[string]*ResolvedEntity
}

// Admitted returns the records that pass the blank-value filter, in emission
// order. Dropping blank values is a data-quality filter, not an error.
func Admitted(records []entity.EntityRecord) []entity.EntityRecord {
	out := make([]entity.EntityRecord, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Value) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Resolve groups admitted records by name and selects the highest-confidence
// value per name. Ties keep the earlier record, so resolution is stable with
// respect to input order. Empty input yields an empty resolution.
func Resolve(records []entity.EntityRecord) Resolution {
	res := Resolution{ByName: make(map[string]*ResolvedEntity)}
	for _, rec := range Admitted(records) {
		grp, ok := res.ByName[rec.Name]
		if !ok {
			grp = &ResolvedEntity{Name: rec.Name}
			res.ByName[rec.Name] = grp
			res.Order = append(res.Order, rec.Name)
		}
		grp.Records = append(grp.Records, rec)
	}
	for _, name := range res.Order {
		grp := res.ByName[name]
		best := grp.Records[0]
		for _, rec := range grp.Records[1:] {
			if rec.Confidence > best.Confidence {
				best = rec
			}
		}
		grp.Best = best
		grp.ValueCount = len(grp.Records)
	}
	return res
}

// MultiValueStat reports one name that contributed more than one record.
type MultiValueStat struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

// MultiValued lists the names with more than one contributing record, with
// their value lists, in first-seen order.
func (r Resolution) MultiValued() []MultiValueStat {
	var stats []MultiValueStat
	for _, name := range r.Order {
		grp := r.ByName[name]
		if grp.ValueCount <= 1 {
			continue
		}
		values := make([]string, 0, grp.ValueCount)
		for _, rec := range grp.Records {
			values = append(values, rec.Value)
		}
		stats = append(stats, MultiValueStat{Name: name, Count: grp.ValueCount, Values: values})
	}
	return stats
}
