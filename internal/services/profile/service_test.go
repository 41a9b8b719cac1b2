package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/catalog"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	profileRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/profile"
	"github.com/KirkDiggler/tipsytrek/internal/repositories/profile/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockRepository
	service  *service
	ctx      context.Context

	beer models.Beverage
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Repository: s.mockRepo,
		Metrics:    metrics.New(),
	})
	s.Require().NoError(err)
	s.service = svc

	beer, ok := catalog.BeverageByName("Spotted Cow")
	s.Require().True(ok)
	s.beer = beer
}

func (s *ServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) closeHolder(h *Holder) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(h.Close(ctx))
}

func (s *ServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilRepository, err)
}

func (s *ServiceTestSuite) TestLoadStoredProfile() {
	stored := models.NewProfileForIdentity("user-1", "jo@example.com", "Jo").AddDrink(s.beer)
	s.mockRepo.EXPECT().
		GetProfile(gomock.Any(), &profileRepo.GetProfileInput{UserID: "user-1"}).
		Return(&stored, nil)

	output, err := s.service.Load(s.ctx, &LoadInput{UserID: "user-1", Email: "jo@example.com"})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal(stored, output.Profile)
}

func (s *ServiceTestSuite) TestLoadMissingProfileSavesFreshOne() {
	s.mockRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	var saved models.Profile
	s.mockRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			saved = *input.Profile
			return nil
		})

	output, err := s.service.Load(s.ctx, &LoadInput{UserID: "user-1", Email: "jo.smith@example.com"})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Equal("user-1", output.Profile.UID)
	s.Equal("@jo.smith", output.Profile.Username)
	s.Equal("jo.smith", output.Profile.DisplayName)
	s.Equal(0, output.Profile.DrinkCount())
	s.Equal(output.Profile, saved)
}

func (s *ServiceTestSuite) TestLoadFailureFallsBackWithoutSaving() {
	s.mockRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	output, err := s.service.Load(s.ctx, &LoadInput{UserID: "user-1", Email: "jo@example.com", DisplayName: "Jo"})
	s.Require().NoError(err)
	s.False(output.Found)
	s.True(output.ReadFailed)
	s.Equal("Jo", output.Profile.DisplayName)
	s.Equal("@jo", output.Profile.Username)
}

func (s *ServiceTestSuite) TestReadOnlyLoadNeverCreatesRecord() {
	s.mockRepo.EXPECT().
		GetProfile(gomock.Any(), &profileRepo.GetProfileInput{UserID: "123456789012345678"}).
		Return(nil, profileRepo.ErrProfileNotFound)

	// No SaveProfile expectation: any call fails the test
	output, err := s.service.Load(s.ctx, &LoadInput{UserID: "123456789012345678", ReadOnly: true})
	s.Require().NoError(err)
	s.False(output.Found)
	s.False(output.ReadFailed)
	s.Equal(0, output.Profile.DrinkCount())
}

func (s *ServiceTestSuite) TestSkipPersistHolderNeverSaves() {
	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile:     models.NewProfileForIdentity("user-1", "jo@example.com", "Jo"),
		SkipPersist: true,
	})
	s.Require().NoError(err)

	_, after, err := holder.Update(func(p models.Profile) models.Profile {
		return p.AddDrink(s.beer)
	})
	s.Require().NoError(err)
	s.Equal(1, after.DrinkCount())

	// No SaveProfile expectation: any call fails the test
	s.closeHolder(holder)
	s.Equal(1, holder.Current().DrinkCount())
}

func (s *ServiceTestSuite) TestLoadWithoutUserIsPlaceholder() {
	output, err := s.service.Load(s.ctx, &LoadInput{})
	s.Require().NoError(err)
	s.Equal(models.PlaceholderDisplayName, output.Profile.DisplayName)
	s.Equal(models.PlaceholderUsername, output.Profile.Username)
	s.False(output.Profile.IsAuthenticated())

	_, err = s.service.Load(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func (s *ServiceTestSuite) TestHolderPersistsLatestSnapshot() {
	var (
		mu    sync.Mutex
		saved []models.Profile
	)
	s.mockRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			mu.Lock()
			defer mu.Unlock()
			saved = append(saved, *input.Profile)
			return nil
		}).
		MinTimes(1)

	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", ""),
	})
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		_, _, err := holder.Update(func(p models.Profile) models.Profile {
			return p.AddDrink(s.beer)
		})
		s.Require().NoError(err)
	}

	s.closeHolder(holder)

	mu.Lock()
	defer mu.Unlock()
	s.Require().NotEmpty(saved)
	s.Equal(holder.Current(), saved[len(saved)-1])
	s.Equal(5, saved[len(saved)-1].DrinkCount())
}

func (s *ServiceTestSuite) TestPersistFailureKeepsMemoryState() {
	s.mockRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		MinTimes(1)

	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", ""),
	})
	s.Require().NoError(err)

	_, after, err := holder.Update(func(p models.Profile) models.Profile {
		return p.AddDrink(s.beer)
	})
	s.Require().NoError(err)

	s.closeHolder(holder)

	s.Equal(1, after.DrinkCount())
	s.Equal(after, holder.Current())
}

func (s *ServiceTestSuite) TestPlaceholderIsNeverPersisted() {
	holder, err := s.service.NewHolder(&NewHolderInput{Profile: models.NewProfile()})
	s.Require().NoError(err)

	_, _, err = holder.Update(func(p models.Profile) models.Profile {
		return p.AddDrink(s.beer)
	})
	s.Require().NoError(err)

	// No SaveProfile expectation: any call fails the test
	s.closeHolder(holder)
}

func (s *ServiceTestSuite) TestUpdateAfterCloseIsNotPersisted() {
	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", ""),
	})
	s.Require().NoError(err)
	s.closeHolder(holder)

	_, after, err := holder.Update(func(p models.Profile) models.Profile {
		return p.IncrementBarVisit()
	})
	s.Require().NoError(err)
	s.Equal(1, after.BarVisitCount)
	s.Equal(1, holder.Current().BarVisitCount)

	// Closing twice is fine
	s.closeHolder(holder)
}

func (s *ServiceTestSuite) TestUpdateReturnsBeforeAndAfter() {
	s.mockRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", "").AddDrink(s.beer),
	})
	s.Require().NoError(err)
	defer s.closeHolder(holder)

	before, after, err := holder.Update(func(p models.Profile) models.Profile {
		return p.ResetCurrentDrinks()
	})
	s.Require().NoError(err)

	s.Equal(1, before.SessionDrinkCount())
	s.Equal(0, after.SessionDrinkCount())
	s.Equal(1, after.DrinkCount())
	s.Equal("0.00%", after.FormattedBAC())

	// The old snapshot is untouched
	s.Equal(1, before.SessionDrinkCount())

	_, _, err = holder.Update(nil)
	s.Equal(ErrNilUpdate, err)
}

func (s *ServiceTestSuite) TestAchievementsReportedOnce() {
	s.mockRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var unlocked []string
	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", "").AddDrink(s.beer),
		OnAchievement: func(a models.Achievement) {
			unlocked = append(unlocked, a.Name)
		},
	})
	s.Require().NoError(err)
	defer s.closeHolder(holder)

	add := func(p models.Profile) models.Profile { return p.AddDrink(s.beer) }

	_, _, err = holder.Update(add)
	s.Require().NoError(err)
	s.Equal([]string{"Getting Started"}, unlocked)

	_, _, err = holder.Update(add)
	s.Require().NoError(err)
	s.Equal([]string{"Getting Started"}, unlocked)

	_, _, err = holder.Update(func(p models.Profile) models.Profile { return p.IncrementBarVisit() })
	s.Require().NoError(err)
	s.Equal([]string{"Getting Started", "First Bar!"}, unlocked)

	// Resetting the session does not touch all-time counters
	_, _, err = holder.Update(func(p models.Profile) models.Profile { return p.ResetCurrentDrinks() })
	s.Require().NoError(err)
	s.Len(unlocked, 2)
}

func (s *ServiceTestSuite) TestConcurrentUpdatesAreSerialized() {
	s.mockRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var (
		mu       sync.Mutex
		unlocked = make(map[string]int)
	)
	holder, err := s.service.NewHolder(&NewHolderInput{
		Profile: models.NewProfileForIdentity("user-1", "jo@example.com", ""),
		OnAchievement: func(a models.Achievement) {
			mu.Lock()
			defer mu.Unlock()
			unlocked[a.ID]++
		},
	})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = holder.Update(func(p models.Profile) models.Profile {
				return p.AddDrink(s.beer)
			})
		}()
	}
	wg.Wait()
	s.closeHolder(holder)

	s.Equal(50, holder.Current().DrinkCount())
	s.Equal(map[string]int{"drink_2": 1, "drink_5": 1, "drink_10": 1, "drink_20": 1}, unlocked)
}
