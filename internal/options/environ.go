package options

import "os"

// Environ supplies the variable slot used to hand options down to child
// processes. It exists so parsing can run against a fake environment in
// tests.
type Environ interface {
	Get(key string) string
	Set(key, value string) error
}

// SystemEnv reads and writes the process environment.
type SystemEnv struct{}

func (SystemEnv) Get(key string) string       { return os.Getenv(key) }
func (SystemEnv) Set(key, value string) error { return os.Setenv(key, value) }
