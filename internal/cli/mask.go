package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/mask"
	"github.com/zarlcorp/zfake/internal/record"
)

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <strategy> <value>",
		Short: "Apply one masking strategy (fake, mask, partial, hash) to a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mask.Strategy(args[0])
			if !s.Valid() {
				return fmt.Errorf("unknown masking strategy %q", args[0])
			}

			const field = "value"
			e := mask.NewEngine(mask.Rules{field: s}, fake.New(0), nil)
			fmt.Fprintln(cmd.OutOrStdout(), record.String(e.Apply(field, args[1])))
			return nil
		},
	}
}
