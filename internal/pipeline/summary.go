package pipeline

import (
	"context"

	"github.com/si-akram/invoice-docai/internal/entity"
	"github.com/si-akram/invoice-docai/internal/validation"
)

// EntityStat aggregates all records behind one entity name.
type EntityStat struct {
	Name          string
	Count         int
	Best          string
	BestConf      float64
	AvgConfidence float64
	MaxConfidence float64
	MinConfidence float64
	Values        []string
}

// DocumentSummary describes one stored run: the row itself plus the
// resolved view of its extracted entities.
type DocumentSummary struct {
	Record            *entity.ProcessingRecord
	TotalEntities     int
	UniqueEntityTypes int
	Entities          []EntityStat
	MultiValued       []validation.MultiValueStat
}

// Summarize rebuilds the resolved entity view for a stored run from its
// extracted_entities rows.
func (p *Processor) Summarize(ctx context.Context, id int) (*DocumentSummary, error) {
	rec, err := p.Records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := p.Records.GetEntities(ctx, id)
	if err != nil {
		return nil, err
	}

	records := make([]entity.EntityRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	res := validation.Resolve(records)
	summary := &DocumentSummary{
		Record:            rec,
		TotalEntities:     len(records),
		UniqueEntityTypes: len(res.Order),
		MultiValued:       res.MultiValued(),
	}
	for _, name := range res.Order {
		summary.Entities = append(summary.Entities, entityStat(res.ByName[name]))
	}
	return summary, nil
}

func entityStat(grp *validation.ResolvedEntity) EntityStat {
	stat := EntityStat{
		Name:          grp.Name,
		Count:         grp.ValueCount,
		Best:          grp.Best.Value,
		BestConf:      grp.Best.Confidence,
		MaxConfidence: grp.Records[0].Confidence,
		MinConfidence: grp.Records[0].Confidence,
	}
	var sum float64
	for _, rec := range grp.Records {
		stat.Values = append(stat.Values, rec.Value)
		sum += rec.Confidence
		if rec.Confidence > stat.MaxConfidence {
			stat.MaxConfidence = rec.Confidence
		}
		if rec.Confidence < stat.MinConfidence {
			stat.MinConfidence = rec.Confidence
		}
	}
	stat.AvgConfidence = sum / float64(len(grp.Records))
	return stat
}
