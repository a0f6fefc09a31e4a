package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/scorebook/internal/adapters/repository"
	"github.com/okian/scorebook/internal/domain/model"
)

func newCoach(name, email string) model.Account {
	return model.Account{Name: name, Email: email, PasswordHash: "x", Role: model.RoleCoach}
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) repository.Store {
		t.Helper()
		return repository.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) repository.Store {
		t.Helper()
		store, err := repository.NewSQLiteStore(filepath.Join(t.TempDir(), "scorebook.db"))
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		t.Cleanup(func() { _ = store.Close() })
		return store
	})
}

// runStoreSuite exercises the Store contract against an
// implementation. Both backends must behave identically.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) repository.Store) {
	t.Helper()
	ctx := context.Background()

	convey.Convey("Given an empty store", t, func() {
		store := newStore(t)

		convey.Convey("When creating an account", func() {
			acc, err := store.CreateAccount(ctx, newCoach("Pat Morgan", "pat@club.test"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(acc.ID, convey.ShouldNotBeEmpty)

			convey.Convey("Then it can be fetched by id and email", func() {
				byID, err := store.Account(ctx, acc.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(byID.Name, convey.ShouldEqual, "Pat Morgan")

				byEmail, err := store.AccountByEmail(ctx, "PAT@CLUB.TEST")
				convey.So(err, convey.ShouldBeNil)
				convey.So(byEmail.ID, convey.ShouldEqual, acc.ID)
			})

			convey.Convey("Then reusing the email fails regardless of case", func() {
				_, err := store.CreateAccount(ctx, newCoach("Other", "Pat@Club.Test"))
				convey.So(err, convey.ShouldEqual, repository.ErrEmailTaken)
			})
		})

		convey.Convey("When fetching unknown entities", func() {
			_, accErr := store.Account(ctx, "nope")
			_, rosterErr := store.Roster(ctx, "nope")
			_, playerErr := store.Player(ctx, "nope")

			convey.Convey("Then sentinel errors come back", func() {
				convey.So(accErr, convey.ShouldEqual, repository.ErrAccountNotFound)
				convey.So(rosterErr, convey.ShouldEqual, repository.ErrCoachNotFound)
				convey.So(playerErr, convey.ShouldEqual, repository.ErrPlayerNotFound)
			})
		})

		convey.Convey("When building a roster for a coach", func() {
			coach, err := store.CreateAccount(ctx, newCoach("Pat Morgan", "pat@club.test"))
			convey.So(err, convey.ShouldBeNil)

			first, err := store.AddPlayer(ctx, coach.ID, model.PlayerRecord{Name: "Alice", Sport: model.SportCricket})
			convey.So(err, convey.ShouldBeNil)
			second, err := store.AddPlayer(ctx, coach.ID, model.PlayerRecord{Name: "Bob", Sport: model.SportFootball})
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the roster preserves insertion order", func() {
				roster, err := store.Roster(ctx, coach.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(roster), convey.ShouldEqual, 2)
				convey.So(roster[0].ID, convey.ShouldEqual, first.ID)
				convey.So(roster[1].ID, convey.ShouldEqual, second.ID)
			})

			convey.Convey("Then recording matches accumulates state", func() {
				_, err := store.RecordMatch(ctx, first.ID, 80)
				convey.So(err, convey.ShouldBeNil)
				updated, err := store.RecordMatch(ctx, first.ID, 70)
				convey.So(err, convey.ShouldBeNil)

				convey.So(updated.MatchCount, convey.ShouldEqual, 2)
				convey.So(updated.TotalScore, convey.ShouldEqual, 150)
				convey.So(updated.CurrentScore, convey.ShouldEqual, 70)
				convey.So(updated.AverageScore, convey.ShouldEqual, 75)

				convey.Convey("And the roster snapshot reflects it", func() {
					roster, err := store.Roster(ctx, coach.ID)
					convey.So(err, convey.ShouldBeNil)
					convey.So(roster[0].MatchCount, convey.ShouldEqual, 2)
					convey.So(roster[1].MatchCount, convey.ShouldEqual, 0)
				})
			})

			convey.Convey("Then counts track accounts and players", func() {
				accounts, players := store.Counts(ctx)
				convey.So(accounts, convey.ShouldEqual, 1)
				convey.So(players, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When adding a player under a non-coach account", func() {
			player, err := store.CreateAccount(ctx, model.Account{
				Name: "Not A Coach", Email: "p@club.test", PasswordHash: "x",
				Role: model.RolePlayer, Sport: model.SportCricket,
			})
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the roster operations refuse it", func() {
				_, addErr := store.AddPlayer(ctx, player.ID, model.PlayerRecord{Name: "X"})
				convey.So(addErr, convey.ShouldEqual, repository.ErrCoachNotFound)
				_, rosterErr := store.Roster(ctx, player.ID)
				convey.So(rosterErr, convey.ShouldEqual, repository.ErrCoachNotFound)
			})
		})

		convey.Convey("When a running average does not divide evenly", func() {
			coach, err := store.CreateAccount(ctx, newCoach("Pat Morgan", "pat2@club.test"))
			convey.So(err, convey.ShouldBeNil)
			p, err := store.AddPlayer(ctx, coach.ID, model.PlayerRecord{Name: "Cara"})
			convey.So(err, convey.ShouldBeNil)

			for _, score := range []float64{70, 70, 60} {
				_, err = store.RecordMatch(ctx, p.ID, score)
				convey.So(err, convey.ShouldBeNil)
			}

			convey.Convey("Then it is kept at 2 decimal places", func() {
				updated, err := store.Player(ctx, p.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(updated.AverageScore, convey.ShouldEqual, 66.67)
			})
		})
	})
}
