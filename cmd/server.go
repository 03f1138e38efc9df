/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	devConfig "github.com/Daskott/launchpad/dev/config"
	"github.com/Daskott/launchpad/server"
	"github.com/Daskott/launchpad/shared"
	"github.com/Daskott/launchpad/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the launchpad web server",
	Long: `Serves the site pages and handles contact form submissions.

Every key in the server config can be overridden with an env var,
e.g. 'mail.smtp.password' with MAIL_SMTP_PASSWORD.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := serverConfig()
		cobra.CheckErr(err)

		server.Start(*config, isDevEnv)
	},
}

var serverConfigFile string

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverConfigFile, "sconfig", "", "Config for server")
}

// serverConfig loads, env-overrides & validates the server config
func serverConfig() (*shared.ServerConfig, error) {
	var err error
	configFile := serverConfigFile

	if configFile == "" && isDevEnv {
		configFile, err = devConfigFilePath()
		if err != nil {
			return nil, err
		}
	}

	if configFile == "" {
		return nil, formattedError("must set '--sconfig' or run in '--dev' mode")
	}

	config := viper.New()
	config.SetConfigFile(configFile)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv() // read in environment variables that match

	if err := config.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading server config file: %v", err)
	}

	parsedConfig := shared.ServerConfig{}
	if err := config.Unmarshal(&parsedConfig); err != nil {
		return nil, fmt.Errorf("error parsing server config file: %v", err)
	}

	if err := parsedConfig.Validate(); err != nil {
		return nil, err
	}

	return &parsedConfig, nil
}

// devConfigFilePath returns dev/config/server.yml in the current directory,
// creating it from the default dev config when missing
func devConfigFilePath() (string, error) {
	rootDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	configFilePath := filepath.Join(rootDir, "dev", "config", "server.yml")
	return configFilePath, createConfigIfNotExist(configFilePath, devConfig.SERVER_YML)
}

func createConfigIfNotExist(configFilePath, content string) error {
	if utils.FileExist(configFilePath) {
		return nil
	}

	err := utils.CreateDirIfNotExist(filepath.Dir(configFilePath))
	if err != nil {
		return err
	}

	return os.WriteFile(configFilePath, []byte(content), 0600)
}
