package booking

import "github.com/CampusPayServices/fee-slot-booking/internal/httperr"

// ===============================
// Session Screens
// ===============================

type Screen string

const (
	ScreenLoggedOut Screen = "logged_out"
	ScreenDashboard Screen = "dashboard"
	ScreenSuccess   Screen = "success"
)

// ===============================
// Validations
// ===============================

// CanConfirm define whether a booking can be confirmed from this screen
func CanConfirm(current Screen) error {
	if current != ScreenDashboard {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReset define whether the session can go back to the dashboard
func CanReset(current Screen) error {
	if current != ScreenSuccess {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialScreen is where a fresh login lands
func InitialScreen() Screen {
	return ScreenDashboard
}
