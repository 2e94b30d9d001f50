package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prepstack/placement-prep/internal/analysis"
	"github.com/prepstack/placement-prep/internal/schemas"
	"github.com/prepstack/placement-prep/internal/types"
)

// DefaultHistoryLimit bounds how many analysis records are retained.
// Oldest records are trimmed at save time once the limit is exceeded.
const DefaultHistoryLimit = 50

// ErrRecordNotFound is returned by operations that require an existing,
// well-formed record for the given id.
var ErrRecordNotFound = errors.New("analysis record not found")

// HistoryStore keeps the analysis history (newest first) and the latest
// record slot on top of an injected Store. Values that fail to parse are
// treated as absent data, never surfaced as errors.
type HistoryStore struct {
	store Store
	limit int
}

// NewHistoryStore creates a HistoryStore over the given Store. A limit of
// zero or less uses DefaultHistoryLimit.
func NewHistoryStore(s Store, limit int) *HistoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryStore{store: s, limit: limit}
}

// RecordPatch is a partial update applied to a stored record. Nil / empty
// fields are left unchanged. Only the mutable fields of a record can be
// patched; baseScore is immutable after creation by construction.
type RecordPatch struct {
	SkillConfidenceMap map[string]string
	FinalScore         *int
	UpdatedAt          string
}

// Entry is one history entry classified at load time. Corrupted entries
// (failing schema validation, e.g. missing id or baseScore) keep their raw
// bytes but expose no record; they are shown as inert placeholders and
// excluded from interaction.
type Entry struct {
	Record    *types.AnalysisRecord
	Corrupted bool
	Raw       json.RawMessage
}

// SaveAnalysis prepends record to the history and overwrites the latest
// slot. The history is trimmed from the tail to the configured limit.
func (h *HistoryStore) SaveAnalysis(ctx context.Context, record *types.AnalysisRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	raws, err := h.loadRaw(ctx)
	if err != nil {
		return err
	}

	raws = append([]json.RawMessage{data}, raws...)
	if len(raws) > h.limit {
		raws = raws[:h.limit]
	}

	if err := h.saveRaw(ctx, raws); err != nil {
		return err
	}
	if err := h.store.Set(ctx, KeyLatest, data); err != nil {
		return fmt.Errorf("failed to save latest analysis: %w", err)
	}
	return nil
}

// GetHistory returns every parseable record, newest first, as stored.
// Malformed underlying storage yields an empty sequence.
func (h *HistoryStore) GetHistory(ctx context.Context) ([]types.AnalysisRecord, error) {
	raws, err := h.loadRaw(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]types.AnalysisRecord, 0, len(raws))
	for _, raw := range raws {
		var record types.AnalysisRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadEntries returns the history with each entry classified as valid or
// corrupted via schema validation.
func (h *HistoryStore) LoadEntries(ctx context.Context) ([]Entry, error) {
	raws, err := h.loadRaw(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		entry := Entry{Raw: raw}

		var record types.AnalysisRecord
		if jsonErr := json.Unmarshal(raw, &record); jsonErr != nil || record.Malformed() {
			entry.Corrupted = true
		} else if schemaErr := schemas.ValidateAnalysisRecord(raw); schemaErr != nil {
			entry.Corrupted = true
		} else {
			entry.Record = &record
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetLatestAnalysis returns the latest-slot record, or nil if none has
// ever been saved (or the slot is unparseable).
func (h *HistoryStore) GetLatestAnalysis(ctx context.Context) (*types.AnalysisRecord, error) {
	raw, found, err := h.store.Get(ctx, KeyLatest)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest analysis: %w", err)
	}
	if !found {
		return nil, nil
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, nil
	}
	return &record, nil
}

// UpdateHistoryEntry merges patch into the record with the given id and
// persists the whole sequence. If the record is also the current latest,
// the latest slot is updated so the two views never diverge. A missing id
// is a silent no-op. Untouched entries are persisted byte-for-byte, so
// corrupted neighbors are never repaired or dropped by an update.
func (h *HistoryStore) UpdateHistoryEntry(ctx context.Context, id string, patch RecordPatch) error {
	raws, err := h.loadRaw(ctx)
	if err != nil {
		return err
	}

	for i, raw := range raws {
		if peekID(raw) != id {
			continue
		}

		var record types.AnalysisRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			// Matching id on an otherwise unreadable entry: leave it alone.
			return nil
		}

		applyPatch(&record, patch)

		updated, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal updated record: %w", err)
		}
		raws[i] = updated

		if err := h.saveRaw(ctx, raws); err != nil {
			return err
		}

		latest, err := h.GetLatestAnalysis(ctx)
		if err != nil {
			return err
		}
		if latest != nil && latest.ID == id {
			if err := h.store.Set(ctx, KeyLatest, updated); err != nil {
				return fmt.Errorf("failed to update latest analysis: %w", err)
			}
		}
		return nil
	}
	return nil
}

// ToggleSkillConfidence flips the confidence for one skill on the record
// with the given id, rescores it, and persists the result. It returns the
// updated record. Malformed or missing records cannot be toggled.
func (h *HistoryStore) ToggleSkillConfidence(ctx context.Context, id, skill string) (*types.AnalysisRecord, error) {
	entries, err := h.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Corrupted || entry.Record.ID != id {
			continue
		}
		record := entry.Record

		if record.SkillConfidenceMap == nil {
			record.SkillConfidenceMap = map[string]string{}
		}
		analysis.ToggleConfidence(record.SkillConfidenceMap, skill)

		finalScore := analysis.Rescore(record.BaseScore, record.SkillConfidenceMap)
		record.FinalScore = finalScore
		record.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		err := h.UpdateHistoryEntry(ctx, id, RecordPatch{
			SkillConfidenceMap: record.SkillConfidenceMap,
			FinalScore:         &finalScore,
			UpdatedAt:          record.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, ErrRecordNotFound
}

// loadRaw reads the history list without decoding individual entries.
// Unparseable storage degrades to an empty list.
func (h *HistoryStore) loadRaw(ctx context.Context) ([]json.RawMessage, error) {
	raw, found, err := h.store.Get(ctx, KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if !found {
		return nil, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, nil
	}
	return raws, nil
}

func (h *HistoryStore) saveRaw(ctx context.Context, raws []json.RawMessage) error {
	data, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := h.store.Set(ctx, KeyHistory, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// applyPatch merges the set fields of patch into record.
func applyPatch(record *types.AnalysisRecord, patch RecordPatch) {
	if patch.SkillConfidenceMap != nil {
		record.SkillConfidenceMap = patch.SkillConfidenceMap
	}
	if patch.FinalScore != nil {
		record.FinalScore = *patch.FinalScore
	}
	if patch.UpdatedAt != "" {
		record.UpdatedAt = patch.UpdatedAt
	}
}

// peekID extracts just the id field from a raw entry, tolerating entries
// that do not decode as full records.
func peekID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}
