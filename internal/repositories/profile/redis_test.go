package profile

import (
	"context"
	"testing"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetProfile() {
	stout, ok := catalog.BeverageByName("Guinness")
	s.Require().True(ok)

	p := models.NewProfileForIdentity("user-1", "sam@example.com", "").
		AddDrink(stout).
		AddDrink(stout).
		IncrementBarVisit()

	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: &p})
	s.Require().NoError(err)

	// Stored as a single JSON document keyed by UID
	s.True(s.mr.Exists("profile:user-1"))

	got, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(p, *got)
	s.Equal("@sam", got.Username)
	s.Equal(2, got.DrinkCount())
	s.Equal(1, got.BarVisitCount)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	p := models.NewProfileForIdentity("user-1", "sam@example.com", "Sam")
	s.Require().NoError(s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: &p}))

	next := p.IncrementBarVisit().IncrementBarVisit()
	s.Require().NoError(s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: &next}))

	got, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(2, got.BarVisitCount)
}

func (s *RedisRepositoryTestSuite) TestGetMissingProfile() {
	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "nobody"})
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptProfile() {
	s.Require().NoError(s.mr.Set("profile:user-1", "{not json"))

	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.Error(err)
	s.NotErrorIs(err, ErrProfileNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetFillsMissingLists() {
	s.Require().NoError(s.mr.Set("profile:user-1", `{"uid":"user-1","displayName":"Sam","username":"@sam","barVisitCount":4}`))

	got, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.NotNil(got.CurrentDrinks)
	s.NotNil(got.AllTimeDrinks)
	s.Equal(4, got.BarVisitCount)
}

func (s *RedisRepositoryTestSuite) TestSaveRequiresUID() {
	p := models.NewProfile()
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: &p})
	s.Error(err)

	err = s.repo.SaveProfile(context.Background(), nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteProfile() {
	p := models.NewProfileForIdentity("user-1", "sam@example.com", "Sam")
	s.Require().NoError(s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: &p}))

	s.Require().NoError(s.repo.DeleteProfile(context.Background(), &DeleteProfileInput{UserID: "user-1"}))

	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.ErrorIs(err, ErrProfileNotFound)

	// Deleting again is fine
	s.NoError(s.repo.DeleteProfile(context.Background(), &DeleteProfileInput{UserID: "user-1"}))
}
