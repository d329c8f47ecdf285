package settings

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

// EnvPrefix is the prefix for environment variables overriding settings.
const EnvPrefix = "TESTRIG"

// ConfigFileName is the base name of the settings file looked up in the
// working directory.
const ConfigFileName = "testrig"

// specKeys are the viper keys bound to prefixed environment variables so
// they survive unmarshalling even without a config file entry.
var specKeys = []string{
	"spec.testCasePath",
	"spec.machineDefaultsPath",
	"spec.backend",
	"spec.outputPath",
	"spec.force",
}

// InitializeViper creates a Viper instance configured for testrig: it looks
// for testrig.yaml in the working directory and reads TESTRIG_* environment
// variables. The test case path additionally binds to TEST_CASE_CONFIG, the
// variable test runners already set.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetConfigName(ConfigFileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	// BindEnv only errors when called without a key.
	for _, key := range specKeys {
		if key == "spec.testCasePath" {
			_ = viperInstance.BindEnv(key,
				"TESTRIG_SPEC_TESTCASEPATH",
				testcasev1alpha1.EnvTestCaseConfig,
			)

			continue
		}

		_ = viperInstance.BindEnv(key)
	}

	return viperInstance
}

// flagShorthands maps flag names to their single-letter shorthand. Flags not
// listed here have no shorthand.
var flagShorthands = map[string]string{
	"test-case-path": "t",
	"backend":        "b",
	"output-path":    "o",
	"force":          "f",
}

// AddFlagsFromFields registers one CLI flag per field selector on the
// command. Flags bind directly to the managed Config so changed flags can be
// re-applied after unmarshalling.
func (m *ConfigManager) AddFlagsFromFields(cmd *cobra.Command) {
	for _, selector := range m.fieldSelectors {
		fieldPtr := selector.Selector(m.Config)
		if fieldPtr == nil {
			continue
		}

		flagName := m.GenerateFlagName(fieldPtr)
		if flagName == "" {
			continue
		}

		addFlagFromField(cmd.Flags(), fieldPtr, flagName, m.GenerateShorthand(flagName), selector)
	}
}

func addFlagFromField(
	flags *pflag.FlagSet,
	fieldPtr any,
	name, shorthand string,
	selector FieldSelector[settingsv1alpha1.Settings],
) {
	switch ptr := fieldPtr.(type) {
	case pflag.Value:
		flags.VarP(ptr, name, shorthand, selector.Description)
	case *string:
		defaultValue, _ := selector.DefaultValue.(string)
		flags.StringVarP(ptr, name, shorthand, defaultValue, selector.Description)
	case *bool:
		defaultValue, _ := selector.DefaultValue.(bool)
		flags.BoolVarP(ptr, name, shorthand, defaultValue, selector.Description)
	}
}

// GenerateFlagName derives the flag name for a field pointer into the managed
// Config: the kebab-cased leaf field name, or "" when the pointer is not a
// Config field.
func (m *ConfigManager) GenerateFlagName(fieldPtr any) string {
	if fieldPtr == nil || m.Config == nil {
		return ""
	}

	fieldName := findFieldName(reflect.ValueOf(m.Config).Elem(), fieldPtr)
	if fieldName == "" {
		return ""
	}

	return kebabCase(fieldName)
}

// GenerateShorthand returns the single-letter shorthand for a flag name, or
// "" when the flag has none.
func (m *ConfigManager) GenerateShorthand(flagName string) string {
	return flagShorthands[flagName]
}

// findFieldName walks the struct recursively and returns the name of the
// field the pointer refers to. Address alone is not enough: the first field
// of a struct shares its address with the struct, so the pointer type must
// match too.
func findFieldName(structValue reflect.Value, fieldPtr any) string {
	target := reflect.ValueOf(fieldPtr)
	if target.Kind() != reflect.Ptr {
		return ""
	}

	for index := 0; index < structValue.NumField(); index++ {
		field := structValue.Field(index)
		if !field.CanAddr() {
			continue
		}

		address := field.Addr()
		if address.Type() == target.Type() && address.Pointer() == target.Pointer() {
			return structValue.Type().Field(index).Name
		}

		if field.Kind() == reflect.Struct {
			if name := findFieldName(field, fieldPtr); name != "" {
				return name
			}
		}
	}

	return ""
}

func kebabCase(name string) string {
	var builder strings.Builder

	for index, char := range name {
		if unicode.IsUpper(char) {
			if index > 0 {
				builder.WriteByte('-')
			}

			builder.WriteRune(unicode.ToLower(char))

			continue
		}

		builder.WriteRune(char)
	}

	return builder.String()
}
