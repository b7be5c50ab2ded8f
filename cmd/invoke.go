package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/operations"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagParams         = "params"
	flagParamsFile     = "params-file"
	flagContinueOnFail = "continue-on-fail"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <resource.operation>",
	Short: "Run one operation for a parameter object, or for each object of a parameter array",
	Example: `  eigenops invoke strategyManager.getDeposits --params '{"stakerAddress":"0x..."}'
  eigenops invoke delegationManager.isOperator --params-file operators.json --continue-on-fail`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := loadParams(cmd)
		if err != nil {
			return fatal(a.logger, "Invalid parameters", err)
		}
		continueOnFail, _ := cmd.Flags().GetBool(flagContinueOnFail)

		ctx := context.Background()
		exec := a.executor()
		out, err := exec.Execute(ctx, args[0], items, a.credentials(), continueOnFail)
		if len(out) > 0 {
			if werr := writeJSON(os.Stdout, out); werr != nil {
				return werr
			}
		}
		if err != nil {
			return fatal(a.logger, "Operation failed", err)
		}
		return nil
	},
}

func init() {
	invokeCmd.Flags().String(flagParams, "", "Parameters as a JSON object, or an array of objects")
	invokeCmd.Flags().String(flagParamsFile, "", "Path to a JSON file holding the parameters")
	invokeCmd.Flags().Bool(flagContinueOnFail, false, "Record a failing item as {error} and keep going")
}

func loadParams(cmd *cobra.Command) ([]operations.ParameterSource, error) {
	inline, _ := cmd.Flags().GetString(flagParams)
	path, _ := cmd.Flags().GetString(flagParamsFile)

	var raw []byte
	switch {
	case inline != "" && path != "":
		return nil, errorTypes.NewValidationError(flagParams, "use either --%s or --%s", flagParams, flagParamsFile)
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read params file")
		}
		raw = b
	case inline != "":
		raw = []byte(inline)
	default:
		return []operations.ParameterSource{operations.Params{}}, nil
	}
	return ParseParams(raw)
}

// ParseParams decodes a JSON object or array of objects. Numbers stay json.Number so
// 256-bit amounts survive the round trip.
func ParseParams(raw []byte) ([]operations.ParameterSource, error) {
	trimmed := bytes.TrimSpace(raw)
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if strings.HasPrefix(string(trimmed), "[") {
		var list []map[string]any
		if err := dec.Decode(&list); err != nil {
			return nil, errorTypes.NewValidationError(flagParams, "invalid parameter array: %v", err)
		}
		out := make([]operations.ParameterSource, 0, len(list))
		for _, m := range list {
			out = append(out, operations.Params(m))
		}
		return out, nil
	}

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errorTypes.NewValidationError(flagParams, "invalid parameter object: %v", err)
	}
	return []operations.ParameterSource{operations.Params(m)}, nil
}
