// Package config loads mockround settings from a YAML file, a .env file
// and MOCKROUND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mockround/internal/interview"
)

// Environment variables read by ApplyEnv.
const (
	EnvDB          = "MOCKROUND_DB"
	EnvSeed        = "MOCKROUND_SEED"
	EnvCatalog     = "MOCKROUND_CATALOG"
	EnvMetricsAddr = "MOCKROUND_METRICS_ADDR"
)

// DefaultEnvFile is loaded when no --env-file is given, if present.
const DefaultEnvFile = ".env"

// File is the full set of user settings.
type File struct {
	Interview interview.Config           `yaml:"interview"`
	Candidate interview.CandidateProfile `yaml:"candidate"`
	Job       interview.JobDescription   `yaml:"job"`

	// Seed fixes question selection. Nil picks a random seed per session.
	Seed *uint64 `yaml:"seed,omitempty"`

	// Catalog is a question bank file. Empty uses the built-in bank.
	Catalog string `yaml:"catalog,omitempty"`

	// DB is the archive path. Empty resolves the default data dir.
	DB string `yaml:"db,omitempty"`

	// MetricsAddr serves Prometheus metrics during play when set.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// DefaultFile returns the settings used when no config file exists.
func DefaultFile() File {
	return File{
		Interview: interview.DefaultConfig(),
		Candidate: interview.CandidateProfile{
			Name:      "Candidate",
			Seniority: interview.Entry,
			Skills:    []string{"Python", "System Design"},
		},
		Job: interview.JobDescription{
			Role:           "Backend Engineer",
			RequiredSkills: []string{"Python", "System Design", "Data Structures"},
		},
	}
}

// Load reads a YAML config file over DefaultFile. Keys absent from the
// file keep their defaults.
func Load(path string) (File, error) {
	f := DefaultFile()
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// LoadEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing DefaultEnvFile is
// not an error; a missing explicit path is.
func LoadEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides f with any MOCKROUND_* variables that are set.
func (f *File) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		f.DB = v
	}
	if v, ok := os.LookupEnv(EnvCatalog); ok && v != "" {
		f.Catalog = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok && v != "" {
		f.MetricsAddr = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		f.Seed = &seed
	}
	return nil
}

// Validate checks the interview limits and normalizes the candidate
// seniority and job difficulty spellings.
func (f *File) Validate() error {
	if err := f.Interview.Validate(); err != nil {
		return err
	}

	if f.Candidate.Seniority == "" {
		f.Candidate.Seniority = interview.Entry
	}
	s, err := interview.ParseSeniority(string(f.Candidate.Seniority))
	if err != nil {
		return fmt.Errorf("candidate: %w", err)
	}
	f.Candidate.Seniority = s

	if f.Job.TargetDifficulty != "" {
		d, err := interview.ParseDifficulty(string(f.Job.TargetDifficulty))
		if err != nil {
			return fmt.Errorf("job: %w", err)
		}
		f.Job.TargetDifficulty = d
	}
	if len(f.Job.RequiredSkills) == 0 {
		return errors.New("job: at least one required skill is needed")
	}
	return nil
}
