package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sustainalens/internal/domain"
	"sustainalens/internal/scoring"
	"sustainalens/internal/services/assessments"
)

type evaluation struct {
	File      string                  `json:"file"`
	CompanyID string                  `json:"company_id"`
	Year      int                     `json:"year"`
	Result    *domain.ReadinessResult `json:"result,omitempty"`
	Error     string                  `json:"error,omitempty"`
	Problems  []string                `json:"problems,omitempty"`
}

// errInvalidRecords makes the command exit non-zero after the results have
// been written.
var errInvalidRecords = errors.New("some records could not be scored")

func evaluateCmd(opts *options) *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "evaluate <file>...",
		Short: "Score disclosure files and print the results as JSON",
		Long: `Score disclosure records read from YAML or JSON files. A file holds a
single record or a list of records. Results are written to stdout as a JSON
array in input order; records that fail validation are listed with their
problems and make the command exit with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := opts.loadPolicy()
			if err != nil {
				return err
			}
			var (
				records []domain.DisclosureRecord
				files   []string
			)
			for _, path := range args {
				recs, err := readRecords(path)
				if err != nil {
					return err
				}
				opts.log.Debug("read disclosures", zap.String("file", path), zap.Int("records", len(recs)))
				records = append(records, recs...)
				for range recs {
					files = append(files, path)
				}
			}

			outcomes, err := assessments.EvaluateBatch(cmd.Context(), scoring.NewEngine(policy), records, concurrency)
			if err != nil {
				return errors.Wrap(err, "evaluate")
			}
			out := make([]evaluation, len(outcomes))
			failed := 0
			for i, o := range outcomes {
				out[i] = evaluation{File: files[i], CompanyID: o.CompanyID, Year: o.Year, Result: o.Result}
				if o.Err != nil {
					failed++
					out[i].Error = o.Err.Error()
					var verr *scoring.ValidationError
					if errors.As(o.Err, &verr) {
						out[i].Problems = verr.Problems
					}
				}
			}
			opts.log.Debug("evaluated", zap.Int("records", len(out)), zap.Int("failed", failed))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Wrapf(errInvalidRecords, "%d of %d", failed, len(out))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "records scored in parallel (default GOMAXPROCS)")
	return cmd
}

// readRecords decodes a file holding one record or a list of records.
// Files ending in .json are read as JSON, anything else as YAML.
func readRecords(path string) ([]domain.DisclosureRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read disclosures")
	}
	var recs []domain.DisclosureRecord
	if strings.EqualFold(filepath.Ext(path), ".json") {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &recs)
		} else {
			var rec domain.DisclosureRecord
			err = json.Unmarshal(trimmed, &rec)
			recs = []domain.DisclosureRecord{rec}
		}
		return recs, errors.Wrapf(err, "decode %s", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if len(doc.Content) == 0 {
		return nil, errors.Newf("%s: no records", path)
	}
	if doc.Content[0].Kind == yaml.SequenceNode {
		err = doc.Content[0].Decode(&recs)
	} else {
		var rec domain.DisclosureRecord
		err = doc.Content[0].Decode(&rec)
		recs = []domain.DisclosureRecord{rec}
	}
	return recs, errors.Wrapf(err, "decode %s", path)
}
