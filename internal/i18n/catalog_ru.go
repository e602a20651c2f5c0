package i18n

import "github.com/LazyIfox/Pizza3/internal/domain"

// Russian is the language the original site ships in; the wording below is
// carried over verbatim.

var ruStatusLabels = map[domain.OrderStatus]string{
	domain.StatusDraft:     "Черновик",
	domain.StatusDeleted:   "Удалён",
	domain.StatusFormed:    "Сформирован",
	domain.StatusCompleted: "Завершён",
	domain.StatusRejected:  "Отклонён",
}

var ruMessages = map[string]string{
	MsgBasketTitle:        "Корзина",
	MsgBasketCookTitle:    "Ваши задачи",
	MsgBasketEmpty:        "Ваша корзина сейчас пуста",
	MsgBasketUnauthed:     "Авторизуйтесь, чтобы получить доступ.",
	MsgBasketNoTasks:      "Нет задач на приготовление.",
	MsgBasketPlaceFailed:  "Не удалось оформить заказ. Попробуйте снова.",
	MsgBasketRemoveFailed: "Не удалось удалить пиццу. Попробуйте снова.",
	MsgBasketCookedFailed: "Не удалось отметить как приготовленную. Попробуйте снова.",
	MsgDetailNotFound:     "Пицца не найдена",
	MsgDetailAddFailed:    "Ошибка при добавлении пиццы в корзину",
	MsgMenuTitle:          "Пицца",
	MsgMenuCookTitle:      "Информация о пиццах, которые находятся под вашей ответственностью",
	MsgMenuNoMatches:      "Нет подходящих пицц под данные фильтры",
	MsgOrdersTitle:        "Заказы",
	MsgOrdersUnauthed:     "Вы пока не авторизованы. Чтобы просматривать существующие заказы, войдите в аккаунт.",
	MsgOrdersNoMatches:    "Нет подходящих заказов под ваши фильтры",
	MsgOrdersNotCompleted: "не завершён",
	MsgAuthBadCredentials: "Некорректный логин или пароль!",
	MsgAuthUserExists:     "Такой пользователь уже существует",
	MsgAuthInvalidInput:   "Заполните логин и пароль",
	MsgAuthRegistered:     "Регистрация прошла успешно. Теперь войдите в аккаунт.",
	MsgErrTransport:       "Сервер недоступен. Попробуйте снова.",
	MsgShellTitle:         "Пиццерия",
	MsgCrumbHome:          "Главная",
	MsgCrumbOrders:        "Заказы",
	MsgCrumbBasket:        "Корзина",
	MsgCrumbAuth:          "Авторизация",
	MsgCrumbRegister:      "Регистрация",
	MsgCrumbDetail:        "Подробнее",
}
