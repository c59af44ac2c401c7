package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// VerificationStatus represents the outcome of an explorer verification request
type VerificationStatus string

const (
	VerificationStatusSkipped         VerificationStatus = "SKIPPED"
	VerificationStatusVerified        VerificationStatus = "VERIFIED"
	VerificationStatusAlreadyVerified VerificationStatus = "ALREADY_VERIFIED"
	VerificationStatusFailed          VerificationStatus = "FAILED"
)

// DeploymentRecord is the entry stored per network in deployments.json
type DeploymentRecord struct {
	Address         string         `json:"address" yaml:"address"`
	Deployer        string         `json:"deployer" yaml:"deployer"`
	Roles           RoleAssignment `json:"roles" yaml:"roles"`
	InitialSupply   string         `json:"initialSupply" yaml:"initialSupply"`
	RemainingSupply string         `json:"remainingSupply" yaml:"remainingSupply"`
	DeploymentTime  time.Time      `json:"deploymentTime" yaml:"deploymentTime"`
	LastUpdated     time.Time      `json:"lastUpdated" yaml:"lastUpdated"`
}

// RecordTimeLayout is the fixed-width UTC timestamp format of deployments.json
const RecordTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// recordDoc is the serialized shape of a DeploymentRecord
type recordDoc struct {
	Address         string         `json:"address" yaml:"address"`
	Deployer        string         `json:"deployer" yaml:"deployer"`
	Roles           RoleAssignment `json:"roles" yaml:"roles"`
	InitialSupply   string         `json:"initialSupply" yaml:"initialSupply"`
	RemainingSupply string         `json:"remainingSupply" yaml:"remainingSupply"`
	DeploymentTime  string         `json:"deploymentTime" yaml:"deploymentTime"`
	LastUpdated     string         `json:"lastUpdated" yaml:"lastUpdated"`
}

func (r DeploymentRecord) doc() recordDoc {
	return recordDoc{
		Address:         r.Address,
		Deployer:        r.Deployer,
		Roles:           r.Roles,
		InitialSupply:   r.InitialSupply,
		RemainingSupply: r.RemainingSupply,
		DeploymentTime:  r.DeploymentTime.UTC().Format(RecordTimeLayout),
		LastUpdated:     r.LastUpdated.UTC().Format(RecordTimeLayout),
	}
}

// MarshalJSON writes timestamps with millisecond precision always present
func (r DeploymentRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.doc())
}

// MarshalYAML renders the same shape as the JSON record
func (r DeploymentRecord) MarshalYAML() (any, error) {
	return r.doc(), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp
func (r *DeploymentRecord) UnmarshalJSON(data []byte) error {
	var d recordDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	deployed, err := parseRecordTime(d.DeploymentTime)
	if err != nil {
		return fmt.Errorf("deploymentTime: %w", err)
	}
	updated, err := parseRecordTime(d.LastUpdated)
	if err != nil {
		return fmt.Errorf("lastUpdated: %w", err)
	}

	*r = DeploymentRecord{
		Address:         d.Address,
		Deployer:        d.Deployer,
		Roles:           d.Roles,
		InitialSupply:   d.InitialSupply,
		RemainingSupply: d.RemainingSupply,
		DeploymentTime:  deployed,
		LastUpdated:     updated,
	}
	return nil
}

func parseRecordTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NetworkDeployment pairs a stored record with the network key it lives under
type NetworkDeployment struct {
	Network string
	Record  *DeploymentRecord
}

// RoleCheck is the result of a single hasRole lookup made after deployment
type RoleCheck struct {
	Name    string
	Role    [32]byte
	Account string
	Granted bool
}

// VerificationOutcome is what the verification helper reports back
type VerificationOutcome struct {
	Status VerificationStatus
	Err    error
}

// Succeeded is true for a fresh verification or an already verified contract
func (o VerificationOutcome) Succeeded() bool {
	return o.Status == VerificationStatusVerified || o.Status == VerificationStatusAlreadyVerified
}
