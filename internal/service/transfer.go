package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// maxImportBytes bounds the size of an import document.
const maxImportBytes = 64 << 20

type transferService struct {
	lock      LockController
	entries   EntryRepository
	clock     utils.Clock
	validator validators.Validator
}

// NewTransferService constructs the plaintext import/export service.
func NewTransferService(lock LockController, entries EntryRepository, clock utils.Clock, validator validators.Validator) TransferService {
	return &transferService{
		lock:      lock,
		entries:   entries,
		clock:     clock,
		validator: validator,
	}
}

func (s *transferService) Export(ctx context.Context, passphrase string, w io.Writer, format models.ExportFormat) (int, error) {
	log := logger.FromContext(ctx)

	if err := s.lock.VerifyPassphrase(ctx, passphrase); err != nil {
		return 0, err
	}

	list, err := s.entries.List()
	if err != nil {
		return 0, err
	}

	doc := models.ExportDocument{
		Version:    models.ExportVersion,
		ExportedAt: s.clock.Now(),
		Entries:    make([]models.ExportRecord, 0, len(list)),
	}
	for _, e := range list {
		doc.Entries = append(doc.Entries, models.NewExportRecord(e))
	}

	switch format {
	case models.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case models.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownFormat, format)
	}
	if err != nil {
		log.Err(err).Str("func", "*transferService.Export").Msg("error writing export")
		return 0, fmt.Errorf("write export: %w", err)
	}

	log.Info().Str("func", "*transferService.Export").Int("entries", len(list)).Str("format", string(format)).Msg("journal exported")
	return len(list), nil
}

func (s *transferService) Import(ctx context.Context, r io.Reader, format models.ExportFormat) (int, error) {
	log := logger.FromContext(ctx)

	if s.lock.IsLocked() {
		return 0, ErrNotUnlocked
	}

	data, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return 0, fmt.Errorf("read import: %w", err)
	}
	if len(data) > maxImportBytes {
		return 0, fmt.Errorf("%w: document exceeds %d bytes", ErrParseFailure, maxImportBytes)
	}

	var records []models.ExportRecord
	switch format {
	case models.FormatYAML:
		records, err = decodeYAML(data)
	case models.FormatJSON, "":
		records, err = decodeJSON(data)
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownFormat, format)
	}
	if err != nil {
		log.Err(err).Str("func", "*transferService.Import").Msg("error decoding import")
		return 0, err
	}

	entries, err := s.toEntries(ctx, records)
	if err != nil {
		log.Err(err).Str("func", "*transferService.Import").Msg("import rejected")
		return 0, err
	}

	if err = s.entries.Replace(ctx, entries); err != nil {
		return 0, err
	}

	log.Info().Str("func", "*transferService.Import").Int("entries", len(entries)).Msg("journal imported")
	return len(entries), nil
}

// ExportToFile renders the export in memory first so a rejected passphrase
// never touches an existing file at path. The file is written owner-only.
func ExportToFile(ctx context.Context, t TransferService, path, passphrase string, format models.ExportFormat) (int, error) {
	var buf bytes.Buffer
	n, err := t.Export(ctx, passphrase, &buf, format)
	if err != nil {
		return 0, err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return 0, fmt.Errorf("write export file: %w", err)
	}
	return n, nil
}

// toEntries validates every record before converting any of them.
func (s *transferService) toEntries(ctx context.Context, records []models.ExportRecord) ([]models.JournalEntry, error) {
	seen := make(map[string]struct{}, len(records))
	entries := make([]models.JournalEntry, 0, len(records))

	for i, rec := range records {
		if err := s.validator.Validate(ctx, rec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrParseFailure, i, err)
		}

		id := *rec.ID
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate entry id %q", ErrParseFailure, id)
		}
		seen[id] = struct{}{}

		content, _ := rec.ContentValue()
		entries = append(entries, models.JournalEntry{
			ID:        id,
			Content:   content,
			Mood:      *rec.Mood,
			Tags:      models.NormalizeTags(*rec.Tags),
			CreatedAt: rec.CreatedAt.UTC(),
			UpdatedAt: rec.UpdatedAt.UTC(),
			WordCount: richtext.WordCount(content),
		})
	}

	return entries, nil
}

// decodeJSON accepts an export document or a bare array of records.
func decodeJSON(data []byte) ([]models.ExportRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParseFailure)
	}

	if trimmed[0] == '[' {
		var records []models.ExportRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
		return records, nil
	}

	var doc struct {
		Version *int                   `json:"version"`
		Entries *[]models.ExportRecord `json:"entries"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	return checkDocument(doc.Version, doc.Entries)
}

// decodeYAML mirrors decodeJSON for YAML documents.
func decodeYAML(data []byte) ([]models.ExportRecord, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var records []models.ExportRecord
		if err := node.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
		return records, nil

	case yaml.MappingNode:
		var doc struct {
			Version *int                   `yaml:"version"`
			Entries *[]models.ExportRecord `yaml:"entries"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
		return checkDocument(doc.Version, doc.Entries)

	default:
		return nil, fmt.Errorf("%w: expected a document or a list of entries", ErrParseFailure)
	}
}

func checkDocument(version *int, entries *[]models.ExportRecord) ([]models.ExportRecord, error) {
	if version != nil && *version > models.ExportVersion {
		return nil, fmt.Errorf("%w: unsupported document version %d", ErrParseFailure, *version)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: %w: entries", ErrParseFailure, validators.ErrMissingField)
	}
	return *entries, nil
}
