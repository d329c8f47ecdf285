package testcase

import (
	"fmt"
	"reflect"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

// decodeMachine decodes a merged machine mapping into a Machine value.
func decodeMachine(document map[string]any, machine *testcasev1alpha1.Machine) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			metav1DurationDecodeHook(),
		),
		Result: machine,
	})
	if err != nil {
		return fmt.Errorf("build machine decoder: %w", err)
	}

	err = decoder.Decode(document)
	if err != nil {
		return fmt.Errorf("%w: %w", testcasev1alpha1.ErrConfig, err)
	}

	return nil
}

// metav1DurationDecodeHook decodes boot_timeout values into metav1.Duration.
// Strings use Go duration syntax ("5m"), bare numbers are seconds.
func metav1DurationDecodeHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(metav1.Duration{}) {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			duration, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("parse duration %q: %w", value, err)
			}

			return metav1.Duration{Duration: duration}, nil
		case int:
			return metav1.Duration{Duration: time.Duration(value) * time.Second}, nil
		case int64:
			return metav1.Duration{Duration: time.Duration(value) * time.Second}, nil
		case float64:
			return metav1.Duration{Duration: time.Duration(value * float64(time.Second))}, nil
		default:
			return data, nil
		}
	}
}
