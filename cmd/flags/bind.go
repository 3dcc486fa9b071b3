package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagDescriptor describes a persistent flag whose value is read through
// viper under ConfigKey.
type FlagDescriptor struct {
	FlagName    string
	ConfigKey   string
	Description string
}

// BindFlags registers a persistent string flag on cmd for each descriptor and
// binds it to the respective viper config key.
func BindFlags(cmd *cobra.Command, flagDescriptors ...FlagDescriptor) error {
	v := viper.GetViper()

	for _, flagDesc := range flagDescriptors {
		// Register a persistent flag on the command.
		cmd.PersistentFlags().String(
			flagDesc.FlagName,
			v.GetString(flagDesc.ConfigKey),
			flagDesc.Description,
		)

		if err := bindFlag(v, cmd, flagDesc); err != nil {
			return err
		}
	}
	return nil
}

// BindBoolFlags is BindFlags for boolean flags.
func BindBoolFlags(cmd *cobra.Command, flagDescriptors ...FlagDescriptor) error {
	v := viper.GetViper()

	for _, flagDesc := range flagDescriptors {
		cmd.PersistentFlags().Bool(
			flagDesc.FlagName,
			v.GetBool(flagDesc.ConfigKey),
			flagDesc.Description,
		)

		if err := bindFlag(v, cmd, flagDesc); err != nil {
			return err
		}
	}
	return nil
}

// bindFlag binds the persistent flag described by flagDesc to its config key.
func bindFlag(v *viper.Viper, cmd *cobra.Command, flagDesc FlagDescriptor) error {
	flag := cmd.PersistentFlags().Lookup(flagDesc.FlagName)
	if flag == nil {
		return ErrFlagNotRegistered.Wrapf("--%s", flagDesc.FlagName)
	}

	return v.BindPFlag(flagDesc.ConfigKey, flag)
}
