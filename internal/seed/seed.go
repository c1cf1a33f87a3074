// Package seed loads voters, elections, positions and candidates from YAML
// files into the database. Loading is idempotent: existing rows are matched by
// their natural keys and left alone.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type VoterData struct {
	RegNo       string `yaml:"reg_no"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone,omitempty"`
	College     string `yaml:"college,omitempty"`
	Programme   string `yaml:"programme,omitempty"`
	YearOfStudy int    `yaml:"year_of_study,omitempty"`
	DormBlock   string `yaml:"dorm_block,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
	Role        string `yaml:"role,omitempty"`
}

type CandidateData struct {
	RegNo            string `yaml:"reg_no"`
	Manifesto        string `yaml:"manifesto,omitempty"`
	CampaignVideoURL string `yaml:"campaign_video_url,omitempty"`
	BallotOrder      int    `yaml:"ballot_order,omitempty"`
	Approved         bool   `yaml:"approved"`
}

type PositionData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Level       string          `yaml:"level,omitempty"`
	College     string          `yaml:"college,omitempty"`
	DormBlock   string          `yaml:"dorm_block,omitempty"`
	BallotOrder int             `yaml:"ballot_order,omitempty"`
	Candidates  []CandidateData `yaml:"candidates,omitempty"`
}

type ElectionData struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Status      string         `yaml:"status,omitempty"`
	Positions   []PositionData `yaml:"positions,omitempty"`
}

// File is the layout of one seed file. Either section may be omitted.
type File struct {
	Voters    []VoterData    `yaml:"voters"`
	Elections []ElectionData `yaml:"elections"`
}

// Report counts the rows created by Apply
type Report struct {
	Voters     int `json:"voters"`
	Elections  int `json:"elections"`
	Positions  int `json:"positions"`
	Candidates int `json:"candidates"`
}

// Load reads every .yaml/.yml file under dir, in lexical order, and merges them
func Load(dir string) (*File, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)

	merged := &File{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		merged.Voters = append(merged.Voters, f.Voters...)
		merged.Elections = append(merged.Elections, f.Elections...)
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Voters))
	for i, v := range f.Voters {
		if v.RegNo == "" || v.Email == "" || v.FirstName == "" {
			return fmt.Errorf("voter %d: reg_no, first_name and email are required", i)
		}
		if seen[v.RegNo] {
			return fmt.Errorf("voter %s listed twice", v.RegNo)
		}
		seen[v.RegNo] = true
		if v.Role != "" && !models.Role(v.Role).IsValid() {
			return fmt.Errorf("voter %s: unknown role %q", v.RegNo, v.Role)
		}
	}
	for _, e := range f.Elections {
		if e.Name == "" {
			return errors.New("election name is required")
		}
		if e.Status != "" && !models.ElectionStatus(e.Status).IsValid() {
			return fmt.Errorf("election %s: unknown status %q", e.Name, e.Status)
		}
		for _, p := range e.Positions {
			if p.Name == "" {
				return fmt.Errorf("election %s: position name is required", e.Name)
			}
			if p.Level != "" && !models.PositionLevel(strings.ToUpper(p.Level)).IsValid() {
				return fmt.Errorf("position %s: unknown level %q", p.Name, p.Level)
			}
			for _, c := range p.Candidates {
				if c.RegNo == "" {
					return fmt.Errorf("position %s: candidate reg_no is required", p.Name)
				}
			}
		}
	}
	return nil
}

// Apply writes f in a single transaction. Candidates may reference voters
// from f or voters already in the database.
func Apply(db *gorm.DB, f *File) (*Report, error) {
	report := &Report{}
	err := db.Transaction(func(tx *gorm.DB) error {
		voterIDs := make(map[string]models.Voter, len(f.Voters))
		for _, data := range f.Voters {
			voter, created, err := createVoter(tx, data)
			if err != nil {
				return fmt.Errorf("voter %s: %w", data.RegNo, err)
			}
			if created {
				report.Voters++
			}
			voterIDs[voter.RegNo] = *voter
		}

		for _, data := range f.Elections {
			election, created, err := createElection(tx, data)
			if err != nil {
				return fmt.Errorf("election %s: %w", data.Name, err)
			}
			if created {
				report.Elections++
			}
			for _, pd := range data.Positions {
				position, created, err := createPosition(tx, election, pd)
				if err != nil {
					return fmt.Errorf("position %s: %w", pd.Name, err)
				}
				if created {
					report.Positions++
				}
				for _, cd := range pd.Candidates {
					voter, ok := voterIDs[cd.RegNo]
					if !ok {
						if err := tx.Where("reg_no = ?", cd.RegNo).First(&voter).Error; err != nil {
							return fmt.Errorf("candidate %s: %w", cd.RegNo, err)
						}
					}
					created, err := createCandidate(tx, voter, position, cd)
					if err != nil {
						return fmt.Errorf("candidate %s: %w", cd.RegNo, err)
					}
					if created {
						report.Candidates++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"voters":     report.Voters,
		"elections":  report.Elections,
		"positions":  report.Positions,
		"candidates": report.Candidates,
	}).Info("seed data applied")
	return report, nil
}

// LoadAndApply is Load followed by Apply
func LoadAndApply(db *gorm.DB, dir string) (*Report, error) {
	f, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return Apply(db, f)
}

func createVoter(tx *gorm.DB, data VoterData) (*models.Voter, bool, error) {
	var existing models.Voter
	err := tx.Where("reg_no = ?", data.RegNo).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.RoleVoter
	if data.Role != "" {
		role = models.Role(data.Role)
	}
	voter := &models.Voter{
		RegNo:        data.RegNo,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        strings.ToLower(data.Email),
		Phone:        data.Phone,
		College:      data.College,
		Programme:    data.Programme,
		YearOfStudy:  data.YearOfStudy,
		DormBlock:    data.DormBlock,
		ImageURL:     data.ImageURL,
		Role:         role,
		VotingStatus: models.VotingStatusNotVoted,
	}
	if err := tx.Create(voter).Error; err != nil {
		return nil, false, err
	}
	return voter, true, nil
}

func createElection(tx *gorm.DB, data ElectionData) (*models.Election, bool, error) {
	var existing models.Election
	err := tx.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	status := models.ElectionStatusDraft
	if data.Status != "" {
		status = models.ElectionStatus(data.Status)
	}
	election := &models.Election{
		Name:        data.Name,
		Description: data.Description,
		Status:      status,
	}
	if status == models.ElectionStatusActive {
		now := time.Now()
		election.StartsAt = &now
	}
	if err := tx.Create(election).Error; err != nil {
		return nil, false, err
	}
	return election, true, nil
}

func createPosition(tx *gorm.DB, election *models.Election, data PositionData) (*models.Position, bool, error) {
	var existing models.Position
	err := tx.Where("election_id = ? AND name = ?", election.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	level := models.PositionLevelUniversity
	if data.Level != "" {
		level = models.PositionLevel(strings.ToUpper(data.Level))
	}
	position := &models.Position{
		ElectionID:  election.ID,
		Name:        data.Name,
		Description: data.Description,
		Level:       level,
		College:     data.College,
		DormBlock:   data.DormBlock,
		BallotOrder: data.BallotOrder,
	}
	if err := tx.Create(position).Error; err != nil {
		return nil, false, err
	}
	return position, true, nil
}

func createCandidate(tx *gorm.DB, voter models.Voter, position *models.Position, data CandidateData) (bool, error) {
	var existing models.Candidate
	err := tx.Where("voter_id = ? AND position_id = ?", voter.ID, position.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	candidate := &models.Candidate{
		VoterID:          voter.ID,
		PositionID:       position.ID,
		Manifesto:        data.Manifesto,
		CampaignVideoURL: data.CampaignVideoURL,
		BallotOrder:      data.BallotOrder,
		IsApproved:       data.Approved,
		IsActive:         true,
	}
	if data.Approved {
		now := time.Now()
		candidate.ApprovedAt = &now
	}
	return true, tx.Create(candidate).Error
}
