package dto

import (
	"github.com/SscSPs/coin_converter/internal/core/domain"
	"github.com/SscSPs/coin_converter/internal/utils"
)

// ConvertCurrencyRequest binds the {cents} path parameter shared by every conversion route.
type ConvertCurrencyRequest struct {
	Cents int64 `uri:"cents" binding:"required,min=1"`
}

// CurrencyBillsAndCoinsResponse is an amount split into bills, with the rest in coins.
// The 100-cent coin is never used here since the bills already take every whole dollar.
type CurrencyBillsAndCoinsResponse struct {
	OneHundred int64 `json:"ONE_HUNDRED"`
	Fifty      int64 `json:"FIFTY"`
	Twenty     int64 `json:"TWENTY"`
	Ten        int64 `json:"TEN"`
	Five       int64 `json:"FIVE"`
	Two        int64 `json:"TWO"`
	One        int64 `json:"ONE"`
	HalfDollar int64 `json:"HALF_DOLLAR"`
	Quarter    int64 `json:"QUARTER"`
	Dime       int64 `json:"DIME"`
	Nickel     int64 `json:"NICKEL"`
	Penny      int64 `json:"PENNY"`
}

// CurrencyCoinsResponse is an amount split into coins only.
type CurrencyCoinsResponse struct {
	OneDollar  int64 `json:"ONE_DOLLAR"`
	HalfDollar int64 `json:"HALF_DOLLAR"`
	Quarter    int64 `json:"QUARTER"`
	Dime       int64 `json:"DIME"`
	Nickel     int64 `json:"NICKEL"`
	Penny      int64 `json:"PENNY"`
}

// CurrencyBillsResponse is an amount split into bills only, plus the cents bills cannot cover.
type CurrencyBillsResponse struct {
	OneHundred int64 `json:"ONE_HUNDRED"`
	Fifty      int64 `json:"FIFTY"`
	Twenty     int64 `json:"TWENTY"`
	Ten        int64 `json:"TEN"`
	Five       int64 `json:"FIVE"`
	Two        int64 `json:"TWO"`
	One        int64 `json:"ONE"`
	Cents      int64 `json:"CENTS"`
}

// DenominationResponse describes one bill or coin.
type DenominationResponse struct {
	Name         string `json:"name" example:"QUARTER"`
	ValueInCents int64  `json:"valueInCents" example:"25"`
	Value        string `json:"value" example:"0.25"`
}

// DenominationsResponse lists both denomination tables, largest first.
type DenominationsResponse struct {
	Bills []DenominationResponse `json:"bills"`
	Coins []DenominationResponse `json:"coins"`
}

// ToCurrencyBillsAndCoinsResponse converts a domain.CombinedConversion to its response DTO
func ToCurrencyBillsAndCoinsResponse(c *domain.CombinedConversion) CurrencyBillsAndCoinsResponse {
	return CurrencyBillsAndCoinsResponse{
		OneHundred: c.Bills.Count(domain.OneHundred),
		Fifty:      c.Bills.Count(domain.Fifty),
		Twenty:     c.Bills.Count(domain.Twenty),
		Ten:        c.Bills.Count(domain.Ten),
		Five:       c.Bills.Count(domain.Five),
		Two:        c.Bills.Count(domain.Two),
		One:        c.Bills.Count(domain.One),
		HalfDollar: c.Coins.Count(domain.HalfDollar),
		Quarter:    c.Coins.Count(domain.Quarter),
		Dime:       c.Coins.Count(domain.Dime),
		Nickel:     c.Coins.Count(domain.Nickel),
		Penny:      c.Coins.Count(domain.Penny),
	}
}

// ToCurrencyCoinsResponse converts a domain.CoinConversion to its response DTO.
// The DOLLAR coin is presented as ONE_DOLLAR.
func ToCurrencyCoinsResponse(c *domain.CoinConversion) CurrencyCoinsResponse {
	return CurrencyCoinsResponse{
		OneDollar:  c.Coins.Count(domain.Dollar),
		HalfDollar: c.Coins.Count(domain.HalfDollar),
		Quarter:    c.Coins.Count(domain.Quarter),
		Dime:       c.Coins.Count(domain.Dime),
		Nickel:     c.Coins.Count(domain.Nickel),
		Penny:      c.Coins.Count(domain.Penny),
	}
}

// ToCurrencyBillsResponse converts a domain.BillConversion to its response DTO
func ToCurrencyBillsResponse(c *domain.BillConversion) CurrencyBillsResponse {
	return CurrencyBillsResponse{
		OneHundred: c.Bills.Count(domain.OneHundred),
		Fifty:      c.Bills.Count(domain.Fifty),
		Twenty:     c.Bills.Count(domain.Twenty),
		Ten:        c.Bills.Count(domain.Ten),
		Five:       c.Bills.Count(domain.Five),
		Two:        c.Bills.Count(domain.Two),
		One:        c.Bills.Count(domain.One),
		Cents:      c.RemainderCents,
	}
}

// ToDenominationResponse converts a domain.Denomination to its response DTO
func ToDenominationResponse(d domain.Denomination) DenominationResponse {
	return DenominationResponse{
		Name:         string(d.Name),
		ValueInCents: d.ValueInCents,
		Value:        utils.FormatCents(d.ValueInCents),
	}
}

// ToDenominationsResponse converts both denomination tables to the catalogue DTO
func ToDenominationsResponse(bills, coins []domain.Denomination) DenominationsResponse {
	res := DenominationsResponse{
		Bills: make([]DenominationResponse, len(bills)),
		Coins: make([]DenominationResponse, len(coins)),
	}
	for i, d := range bills {
		res.Bills[i] = ToDenominationResponse(d)
	}
	for i, d := range coins {
		res.Coins[i] = ToDenominationResponse(d)
	}
	return res
}
