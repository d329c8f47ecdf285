package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// TimingFlagName is the persistent flag that enables per-activity timing output.
const TimingFlagName = "timing"

// VerboseFlagName is the persistent flag that enables debug logging.
const VerboseFlagName = "verbose"

// HasTimingEnabled reports whether the timing flag is set on the command or
// inherited from a parent.
func HasTimingEnabled(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	flag := cmd.Flags().Lookup(TimingFlagName)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(TimingFlagName)
	}

	return flagBoolValue(flag)
}

// MaybeTimer returns the timer when timing output is enabled, nil otherwise.
// Notifications omit timing blocks when given a nil timer.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if HasTimingEnabled(cmd) {
		return tmr
	}

	return nil
}

func flagBoolValue(flag *pflag.Flag) bool {
	if flag == nil {
		return false
	}

	enabled, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		return false
	}

	return enabled
}
