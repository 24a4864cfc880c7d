package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/coin_converter/internal/apperrors"
	"github.com/SscSPs/coin_converter/internal/core/domain"
	portssvc "github.com/SscSPs/coin_converter/internal/core/ports/services"
	"github.com/SscSPs/coin_converter/internal/dto"
	"github.com/SscSPs/coin_converter/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	baseURL                = "/api/v1/converter"
	convertCurrency        = "/convert-currency/"
	convertCurrencyToBills = "/convert-currency-to-bills/"
	convertCurrencyToCoins = "/convert-currency-to-coins/"
)

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) ConvertCombined(ctx context.Context, cents int64) (*domain.CombinedConversion, error) {
	args := m.Called(ctx, cents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CombinedConversion), args.Error(1)
}

func (m *MockConverterService) ConvertToCoins(ctx context.Context, cents int64) (*domain.CoinConversion, error) {
	args := m.Called(ctx, cents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinConversion), args.Error(1)
}

func (m *MockConverterService) ConvertToBills(ctx context.Context, cents int64) (*domain.BillConversion, error) {
	args := m.Called(ctx, cents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillConversion), args.Error(1)
}

func (m *MockConverterService) ListDenominations(ctx context.Context) ([]domain.Denomination, []domain.Denomination) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Denomination), args.Get(1).([]domain.Denomination)
}

// Ensure mock implements the interface
var _ portssvc.ConverterSvcFacade = (*MockConverterService)(nil)

// --- Test Suite ---
type ConverterHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockConverterService
}

func (suite *ConverterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockConverterService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterConverterRoutes(v1, suite.mockService)
}

func (suite *ConverterHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ConverterHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), "Failed to unmarshal response body")
	return body
}

// --- Test Cases ---

func (suite *ConverterHandlerTestSuite) TestConvertCurrency_Success() {
	conversion := &domain.CombinedConversion{
		AmountCents: 186,
		Bills: domain.Breakdown{Counts: map[domain.DenominationName]int64{
			domain.OneHundred: 1, domain.Five: 1,
		}},
		Coins: domain.Breakdown{Counts: map[domain.DenominationName]int64{
			domain.HalfDollar: 1, domain.Quarter: 1, domain.Dime: 1, domain.Penny: 1,
		}},
	}
	suite.mockService.On("ConvertCombined", mock.Anything, int64(186)).Return(conversion, nil).Once()

	w := suite.get(baseURL + convertCurrency + "186")

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.EqualValues(1, body["ONE_HUNDRED"])
	suite.EqualValues(1, body["FIVE"])
	suite.EqualValues(1, body["HALF_DOLLAR"])
	suite.EqualValues(1, body["QUARTER"])
	suite.EqualValues(1, body["DIME"])
	suite.EqualValues(0, body["NICKEL"])
	suite.EqualValues(1, body["PENNY"])
	suite.Len(body, 12)
	suite.NotContains(body, "DOLLAR")
	suite.NotContains(body, "CENTS")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestConvertCurrencyToCoins_Success() {
	conversion := &domain.CoinConversion{
		AmountCents: 286,
		Coins: domain.Breakdown{Counts: map[domain.DenominationName]int64{
			domain.Dollar: 2, domain.HalfDollar: 1, domain.Quarter: 1, domain.Dime: 1, domain.Nickel: 0, domain.Penny: 1,
		}},
	}
	suite.mockService.On("ConvertToCoins", mock.Anything, int64(286)).Return(conversion, nil).Once()

	w := suite.get(baseURL + convertCurrencyToCoins + "286")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyCoinsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.CurrencyCoinsResponse{OneDollar: 2, HalfDollar: 1, Quarter: 1, Dime: 1, Nickel: 0, Penny: 1}, resp)

	body := suite.decode(w)
	suite.Contains(body, "ONE_DOLLAR")
	suite.Len(body, 6)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestConvertCurrencyToBills_Success() {
	conversion := &domain.BillConversion{
		AmountCents: 3_000,
		Bills: domain.Breakdown{Counts: map[domain.DenominationName]int64{
			domain.Twenty: 1, domain.Ten: 1,
		}},
		RemainderCents: 0,
	}
	suite.mockService.On("ConvertToBills", mock.Anything, int64(3_000)).Return(conversion, nil).Once()

	w := suite.get(baseURL + convertCurrencyToBills + "3000")

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.EqualValues(1, body["TWENTY"])
	suite.EqualValues(1, body["TEN"])
	suite.EqualValues(0, body["CENTS"])
	suite.Len(body, 8)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestInvalidCents_Returns400() {
	for _, input := range []string{"0", "-1", "abc", "1.5", "99999999999999999999"} {
		for _, route := range []string{convertCurrency, convertCurrencyToBills, convertCurrencyToCoins} {
			w := suite.get(baseURL + route + input)

			suite.Equal(http.StatusBadRequest, w.Code, "route %s input %s", route, input)
			body := suite.decode(w)
			suite.NotEmpty(body["error"], "route %s input %s", route, input)
		}
	}

	suite.mockService.AssertNotCalled(suite.T(), "ConvertCombined", mock.Anything, mock.Anything)
	suite.mockService.AssertNotCalled(suite.T(), "ConvertToCoins", mock.Anything, mock.Anything)
	suite.mockService.AssertNotCalled(suite.T(), "ConvertToBills", mock.Anything, mock.Anything)
}

func (suite *ConverterHandlerTestSuite) TestZeroCents_Message() {
	w := suite.get(baseURL + convertCurrency + "0")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("cents must be an integer greater than or equal to 1", suite.decode(w)["error"])
}

func (suite *ConverterHandlerTestSuite) TestServiceInvalidArgument_Returns400() {
	err := fmt.Errorf("failed to convert: %w", apperrors.ErrInvalidArgument)
	suite.mockService.On("ConvertToBills", mock.Anything, int64(10)).Return(nil, err).Once()

	w := suite.get(baseURL + convertCurrencyToBills + "10")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestServiceDeadlineExceeded_Returns503() {
	suite.mockService.On("ConvertToCoins", mock.Anything, int64(10)).Return(nil, context.DeadlineExceeded).Once()

	w := suite.get(baseURL + convertCurrencyToCoins + "10")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestServiceUnexpectedError_Returns500() {
	suite.mockService.On("ConvertCombined", mock.Anything, int64(10)).Return(nil, assert.AnError).Once()

	w := suite.get(baseURL + convertCurrency + "10")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to convert currency", suite.decode(w)["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestListDenominations() {
	suite.mockService.On("ListDenominations", mock.Anything).
		Return(domain.BillDenominations(), domain.CoinDenominations()).Once()

	w := suite.get(baseURL + "/denominations")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DenominationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Bills, 7)
	suite.Require().Len(resp.Coins, 6)
	suite.Equal(dto.DenominationResponse{Name: "ONE_HUNDRED", ValueInCents: 10_000, Value: "100.00"}, resp.Bills[0])
	suite.Equal(dto.DenominationResponse{Name: "QUARTER", ValueInCents: 25, Value: "0.25"}, resp.Coins[2])
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestConverterHandler(t *testing.T) {
	suite.Run(t, new(ConverterHandlerTestSuite))
}
