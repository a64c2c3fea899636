package rolllog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	repo, err := NewFile(&Config{
		Dir: s.dir,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestAppendRoll() {
	rolledAt := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
		Record: &models.RollRecord{
			TurnID:     "turn-1",
			Arena:      "arena:1",
			DiceCount:  2,
			Dice:       []int{42, 17},
			PlayerName: "Ann",
			RolledAt:   rolledAt,
		},
	})
	s.Require().NoError(err)

	data, err := os.ReadFile(filepath.Join(s.dir, "arena:1_2d100.csv"))
	s.Require().NoError(err)
	s.Equal("42,17,2025-06-10T15:30:00Z,Ann\n", string(data))
}

func (s *FileRepositoryTestSuite) TestAppendRollAccumulatesLines() {
	rolledAt := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
			Record: &models.RollRecord{
				Arena:      "arena:1",
				DiceCount:  1,
				Dice:       []int{100},
				PlayerName: "Ann",
				RolledAt:   rolledAt,
			},
		})
		s.Require().NoError(err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, "arena:1_1d100.csv"))
	s.Require().NoError(err)
	s.Equal("100,2025-06-10T15:30:00Z,Ann\n100,2025-06-10T15:30:00Z,Ann\n", string(data))
}

func (s *FileRepositoryTestSuite) TestFilesSplitByDiceCount() {
	rolledAt := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
		Record: &models.RollRecord{
			Arena:      "arena:1",
			DiceCount:  1,
			Dice:       []int{100},
			PlayerName: "Ann",
			RolledAt:   rolledAt,
		},
	})
	s.Require().NoError(err)

	err = s.repo.AppendRoll(s.ctx, &AppendRollInput{
		Record: &models.RollRecord{
			Arena:      "arena:1",
			DiceCount:  2,
			Dice:       []int{3, 4},
			PlayerName: "Bob",
			RolledAt:   rolledAt,
		},
	})
	s.Require().NoError(err)

	_, err = os.Stat(filepath.Join(s.dir, "arena:1_1d100.csv"))
	s.NoError(err)
	_, err = os.Stat(filepath.Join(s.dir, "arena:1_2d100.csv"))
	s.NoError(err)
}
