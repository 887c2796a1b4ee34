// Package cli implements the Love OS terminal client: a small REPL over the
// remote store with live list views, partner notifications, and the
// anniversary countdown.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/pairspace/loveos/internal/client/config"
	"github.com/pairspace/loveos/internal/client/cycle"
	"github.com/pairspace/loveos/internal/client/forms"
	"github.com/pairspace/loveos/internal/client/latest"
	"github.com/pairspace/loveos/internal/client/listview"
	"github.com/pairspace/loveos/internal/client/notify"
	"github.com/pairspace/loveos/internal/client/store"
	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

// nicknames rotate through the prompt greeting while logged in.
var nicknames = []string{"sweetheart", "love", "darling", "honey", "cutie"}

type App struct {
	config *config.Config
	store  *store.HTTPClient
	space  *models.Space

	moods   *listview.Controller[models.MoodEntry]
	photos  *listview.Controller[models.PhotoEntry]
	letters *listview.Controller[models.LetterEntry]

	projector   *latest.Projector
	bridge      *notify.Bridge
	cycler      *cycle.Cycler
	unsubscribe store.UnsubscribeFunc

	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		store:  store.NewHTTPClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.space != nil
}

func (a *App) Run(ctx context.Context) {
	defer a.teardown()
	a.Main(ctx)
}

// startSync wires the live machinery after a successful login: one list view
// controller per feature with its own subscription, the mood projector, the
// notification bridge on a dedicated feed, and the nickname cycler.
func (a *App) startSync(ctx context.Context) error {
	a.moods = listview.NewController(common.TableMoods,
		func(ctx context.Context) ([]models.MoodEntry, error) {
			return a.store.ListMoods(ctx, 0)
		}, a.store.Subscribe)
	a.photos = listview.NewController(common.TablePhotos,
		func(ctx context.Context) ([]models.PhotoEntry, error) {
			return a.store.ListPhotos(ctx, 0)
		}, a.store.Subscribe)
	a.letters = listview.NewController(common.TableLetters,
		func(ctx context.Context) ([]models.LetterEntry, error) {
			return a.store.ListLetters(ctx, 0)
		}, a.store.Subscribe)

	for _, init := range []func(context.Context) error{
		a.moods.Initialize, a.photos.Initialize, a.letters.Initialize,
	} {
		if err := init(ctx); err != nil {
			printlnFn("Could not load everything yet:", err.Error())
		}
	}
	a.projector = latest.NewProjector(a.store)
	a.bridge = notify.NewBridge(a.space.Name, newTermNotifier())

	for _, sub := range []func(context.Context) error{
		a.moods.Subscribe, a.photos.Subscribe, a.letters.Subscribe,
	} {
		if err := sub(ctx); err != nil {
			return err
		}
	}

	unsubscribe, err := a.store.Subscribe(ctx, a.bridge.OnChangeEvent)
	if err != nil {
		return err
	}
	a.unsubscribe = unsubscribe

	a.cycler = cycle.NewCycler(len(nicknames), a.config.NicknameCycleInterval)
	a.cycler.Start(nil)
	return nil
}

// teardown releases every subscription and timer. Safe to call with nothing
// started yet, and more than once.
func (a *App) teardown() {
	if a.moods != nil {
		a.moods.Teardown()
	}
	if a.photos != nil {
		a.photos.Teardown()
	}
	if a.letters != nil {
		a.letters.Teardown()
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.cycler != nil {
		a.cycler.Stop()
	}
	_ = a.store.Close()
}

func (a *App) nickname() string {
	if a.cycler == nil {
		return nicknames[0]
	}
	return nicknames[a.cycler.Index()]
}

func (a *App) letterForm() *forms.LetterForm {
	return forms.NewLetterForm(a.store, a.space.Partner)
}

func (a *App) moodForm() *forms.MoodForm {
	return forms.NewMoodForm(a.store)
}

func (a *App) photoForm() *forms.PhotoForm {
	return forms.NewPhotoForm(a.store)
}

func (a *App) answerForm(questionID string) *forms.AnswerForm {
	return forms.NewAnswerForm(a.store, questionID, a.space.Name)
}
