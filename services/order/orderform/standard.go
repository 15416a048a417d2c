package orderform

import (
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// The two forms the order flow presents before submission.

func NewDeliveryForm(address string, payment string) Form {
	return Form{
		Fields: []Field{
			TextField("address", address, "Delivery address"),
			ChoiceField("payment", []string{shopapi.PaymentOffline, shopapi.PaymentOnline}, payment),
		},
	}
}

func NewContactForm(email string, phone string) Form {
	return Form{
		Fields: []Field{
			TextField("email", email, "Email address"),
			TextField("phone", phone, "Phone number"),
		},
	}
}
