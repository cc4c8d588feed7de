package complaint

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// saveSeq disambiguates complaint IDs generated within the same second.
var saveSeq atomic.Uint64

// Bridge turns a completed record into a stored complaint. It is the only
// writer of PersistedComplaint values.
type Bridge struct {
	schema Schema
	store  Store
	now    func() time.Time
	log    *zap.Logger
}

func NewBridge(schema Schema, store Store, now func() time.Time, log *zap.Logger) *Bridge {
	if now == nil {
		now = time.Now
	}
	return &Bridge{
		schema: schema,
		store:  store,
		now:    now,
		log:    log,
	}
}

// Save writes record as a new complaint and returns its ID. Every schema
// field is written; missing values go in empty. The caller must invoke Save
// at most once per completed record.
func (b *Bridge) Save(ctx context.Context, record map[string]string) (string, error) {
	createdAt := b.now()
	complaintID := fmt.Sprintf("RC%s%03d", createdAt.Format("20060102150405"), saveSeq.Add(1)%1000)

	fields := make(map[string]string, len(b.schema))
	for _, f := range b.schema {
		fields[f.Key] = record[f.Key]
	}

	c := &PersistedComplaint{
		ComplaintID: complaintID,
		CreatedAt:   createdAt,
		Fields:      fields,
	}

	if err := b.store.Append(ctx, c); err != nil {
		b.log.Error("complaint save failed", zap.String("complaint_id", complaintID), zap.Error(err))
		return "", fmt.Errorf("save complaint %s: %w", complaintID, err)
	}

	b.log.Info("complaint saved", zap.String("complaint_id", complaintID))
	return complaintID, nil
}
