package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/pkg/errcodes"
)

// Query keys of the top-up form to checkout handoff.
const (
	ParamUsername        = "username"
	ParamRobuxAmount     = "robuxAmount"
	ParamGamepassPrice   = "gamepassPrice"
	ParamGamepassURL     = "gamepassUrl"
	ParamDiscordUsername = "discordUsername"
	ParamTotalPayment    = "totalPayment"
)

// EntryPoint is where a client restarts after a broken handoff.
const EntryPoint = "/"

const minUsernameLen = 3

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

func EncodeParams(p entity.CheckoutParams) url.Values {
	q := url.Values{}

	q.Set(ParamUsername, p.Username)
	q.Set(ParamRobuxAmount, strconv.FormatInt(p.RobuxAmount, 10))
	q.Set(ParamGamepassPrice, strconv.FormatInt(p.GamepassPrice, 10))
	q.Set(ParamGamepassURL, p.GamepassURL)
	q.Set(ParamTotalPayment, strconv.FormatInt(p.TotalPayment, 10))

	if p.DiscordUsername != "" {
		q.Set(ParamDiscordUsername, p.DiscordUsername)
	}

	return q
}

// CheckoutURL builds the link the top-up form navigates to.
func CheckoutURL(base string, p entity.CheckoutParams) string {
	return base + "?" + EncodeParams(p).Encode()
}

// ParseParams decodes the handoff. Every key except discordUsername is
// required, and numbers must be positive; anything else is reported as
// missing so the client restarts from EntryPoint.
func ParseParams(q url.Values) (entity.CheckoutParams, error) {
	var missing []string

	text := func(key string) string {
		v := strings.TrimSpace(q.Get(key))
		if v == "" {
			missing = append(missing, key)
		}

		return v
	}

	number := func(key string) int64 {
		n, err := strconv.ParseInt(strings.TrimSpace(q.Get(key)), 10, 64)
		if err != nil || n <= 0 {
			missing = append(missing, key)
			return 0
		}

		return n
	}

	p := entity.CheckoutParams{
		Username:        text(ParamUsername),
		RobuxAmount:     number(ParamRobuxAmount),
		GamepassPrice:   number(ParamGamepassPrice),
		GamepassURL:     text(ParamGamepassURL),
		DiscordUsername: strings.TrimSpace(q.Get(ParamDiscordUsername)),
		TotalPayment:    number(ParamTotalPayment),
	}

	if len(missing) > 0 {
		return entity.CheckoutParams{}, domain.NewError(
			errcodes.MissingCheckoutParams,
			fmt.Sprintf("missing order details (%s), please start again at %s", strings.Join(missing, ", "), EntryPoint),
		)
	}

	return p, nil
}

// ValidateForm applies the top-up form rules to the buyer supplied fields.
func ValidateForm(p entity.CheckoutParams) error {
	if len([]rune(strings.TrimSpace(p.Username))) < minUsernameLen {
		return domain.NewError(
			errcodes.InvalidUsername,
			fmt.Sprintf("username must be at least %d characters", minUsernameLen),
		)
	}

	if err := validate.Var(p.GamepassURL, "required,url"); err != nil {
		return domain.WrapError(err, errcodes.InvalidURL, "please enter a valid game pass url")
	}

	return nil
}
