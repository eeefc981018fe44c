package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"tesla-notes/validator"

	"github.com/spf13/cobra"
)

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func parseDate(arg string) (string, error) {
	if !validator.ValidDate(arg) {
		return "", fmt.Errorf("date must be a valid date in YYYY-MM-DD format, got %q", arg)
	}
	return arg, nil
}

// changedString returns a pointer to value only when the flag was set
func changedString(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func changedBool(cmd *cobra.Command, flag string, value bool) *bool {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func changedInt64(cmd *cobra.Command, flag string, value int64) *int64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}
