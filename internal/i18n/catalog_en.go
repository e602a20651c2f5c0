package i18n

import "github.com/LazyIfox/Pizza3/internal/domain"

var enStatusLabels = map[domain.OrderStatus]string{
	domain.StatusDraft:     "Draft",
	domain.StatusDeleted:   "Deleted",
	domain.StatusFormed:    "Formed",
	domain.StatusCompleted: "Completed",
	domain.StatusRejected:  "Rejected",
}

var enMessages = map[string]string{
	MsgBasketTitle:        "Basket",
	MsgBasketCookTitle:    "Your tasks",
	MsgBasketEmpty:        "Your basket is empty",
	MsgBasketUnauthed:     "Sign in to access the basket.",
	MsgBasketNoTasks:      "No cooking tasks.",
	MsgBasketPlaceFailed:  "Could not place the order. Please try again.",
	MsgBasketRemoveFailed: "Could not remove the pizza. Please try again.",
	MsgBasketCookedFailed: "Could not mark as cooked. Please try again.",
	MsgDetailNotFound:     "Pizza not found",
	MsgDetailAddFailed:    "Could not add the pizza to the basket",
	MsgMenuTitle:          "Pizza",
	MsgMenuCookTitle:      "Pizzas you are responsible for",
	MsgMenuNoMatches:      "No pizzas match the filters",
	MsgOrdersTitle:        "Orders",
	MsgOrdersUnauthed:     "You are not signed in. Sign in to view your orders.",
	MsgOrdersNoMatches:    "No orders match your filters",
	MsgOrdersNotCompleted: "not completed",
	MsgAuthBadCredentials: "Invalid login or password!",
	MsgAuthUserExists:     "This user already exists",
	MsgAuthInvalidInput:   "Fill in login and password",
	MsgAuthRegistered:     "Registration succeeded. Now sign in.",
	MsgErrTransport:       "The server is unavailable. Please try again.",
	MsgShellTitle:         "Pizzeria",
	MsgCrumbHome:          "Home",
	MsgCrumbOrders:        "Orders",
	MsgCrumbBasket:        "Basket",
	MsgCrumbAuth:          "Sign in",
	MsgCrumbRegister:      "Sign up",
	MsgCrumbDetail:        "Details",
}
