// Package commands implements the sustainalens command line, which scores
// disclosure files offline with the same engine the server uses.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sustainalens/internal/config"
	"sustainalens/internal/logging"
	"sustainalens/internal/scoring"
)

type options struct {
	policyFile string
	verbose    bool
	log        *zap.Logger
}

// Root builds the command tree. Each call returns fresh commands so tests
// can run them in isolation.
func Root() *cobra.Command {
	opts := &options{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "sustainalens",
		Short: "Score corporate climate disclosures for transition readiness",
		Long: `sustainalens scores annual climate disclosures on four pillars
(Ambition, Progress, Disclosure, Credibility), combines them into a
composite readiness score and flags greenwashing risk.

Examples:
  sustainalens evaluate acme-2024.yaml        # Score one disclosure file
  sustainalens evaluate --policy strict.yaml *.json
  sustainalens policy                          # Print the default policy`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			log, err := logging.New("console", true)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.policyFile, "policy", "", "YAML policy file (default policy when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(evaluateCmd(opts), policyCmd(opts))
	return root
}

func (o *options) loadPolicy() (*scoring.Policy, error) {
	return config.LoadPolicy(o.policyFile)
}
