// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text files
// and from a dotenv file. In the directory each file is one secret: the
// filename is the key and the trimmed contents are the value. In the dotenv
// file the variables NCBI_API_KEY and NCBI_EMAIL map to the same keys.
//
// Supported keys: ncbi-api-key, ncbi-email.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Keys recognized by the CLI.
const (
	KeyAPIKey = "ncbi-api-key"
	KeyEmail  = "ncbi-email"
)

// envKeys maps dotenv variable names to secret keys.
var envKeys = map[string]string{
	"NCBI_API_KEY": KeyAPIKey,
	"NCBI_EMAIL":   KeyEmail,
}

// Load merges secrets from envFile and dir; directory entries win. A missing
// directory or dotenv file is not an error. Unreadable secret files produce a
// warning on warn but do not abort.
func Load(dir, envFile string, warn io.Writer) (map[string]string, error) {
	secrets := make(map[string]string)

	if envFile != "" {
		if err := loadEnvFile(envFile, secrets); err != nil {
			return nil, err
		}
	}
	if dir != "" {
		if err := loadDir(dir, secrets, warn); err != nil {
			return nil, err
		}
	}
	return secrets, nil
}

func loadEnvFile(path string, into map[string]string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	for name, key := range envKeys {
		if v := strings.TrimSpace(vars[name]); v != "" {
			into[key] = v
		}
	}
	return nil
}

func loadDir(dir string, into map[string]string, warn io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			into[name] = value
		}
	}
	return nil
}
