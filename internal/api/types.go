package api

// basePath 为网关统一的 API 前缀。
const basePath = "/api/v1"

// ---- 根接口 ----

// StatusResponse 为 /status 响应。
type StatusResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// InfoResponse 为 /info 响应。
type InfoResponse struct {
	TransferFeeInfo *TransferFeeInfo `json:"transfer_fee_info,omitempty"`
	WithdrawalDelay int64            `json:"withdrawal_delay,omitempty"`
}

type TransferFeeInfo struct {
	FeePercentage string `json:"fee_percentage,omitempty"`
	MinimumFee    string `json:"minimum_fee,omitempty"`
	MaximumFee    string `json:"maximum_fee,omitempty"`
}

// ---- 交易查询接口 ----

// NextNonceResponse 为 /nextNonce 响应。
type NextNonceResponse struct {
	AccountIndex int64  `json:"account_index"`
	NextNonce    uint64 `json:"next_nonce"`
}

// TransactionResponse 为链上交易详情。
type TransactionResponse struct {
	TxHash       string                 `json:"tx_hash"`
	TxType       string                 `json:"tx_type"`
	AccountIndex int64                  `json:"account_index"`
	BlockNumber  int64                  `json:"block_number"`
	Timestamp    int64                  `json:"timestamp"`
	Status       string                 `json:"status"`
	Payload      map[string]interface{} `json:"payload"`
	Signature    string                 `json:"signature"`
	Nonce        uint64                 `json:"nonce"`
	GasUsed      string                 `json:"gas_used,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// TxsRequest 为 /txs 查询条件。
type TxsRequest struct {
	AccountIndex *int64
	TxType       string
	StartTime    int64
	EndTime      int64
	Limit        int
	Offset       int
}

type TxsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

// LogsRequest 为 /logs 查询条件。
type LogsRequest struct {
	AccountIndex *int64
	MarketID     *int64
	StartTime    int64
	EndTime      int64
	Limit        int
	Offset       int
}

type LogEntry struct {
	LogID        string                 `json:"log_id"`
	TxHash       string                 `json:"tx_hash"`
	AccountIndex int64                  `json:"account_index"`
	MarketID     int64                  `json:"market_id,omitempty"`
	EventType    string                 `json:"event_type"`
	Data         map[string]interface{} `json:"data"`
	Timestamp    int64                  `json:"timestamp"`
	BlockNumber  int64                  `json:"block_number"`
}

type LogsResponse struct {
	Logs  []LogEntry `json:"logs"`
	Total int64      `json:"total"`
}

type BlockTxsResponse struct {
	BlockNumber  int64                 `json:"block_number"`
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

// HistoryRequest 为各类资金流水的公共查询条件。
type HistoryRequest struct {
	AccountIndex int64
	StartTime    int64
	EndTime      int64
	Limit        int
	Offset       int
}

type DepositEntry struct {
	DepositID    string `json:"deposit_id"`
	AccountIndex int64  `json:"account_index"`
	Amount       string `json:"amount"`
	Token        string `json:"token"`
	TxHash       string `json:"tx_hash"`
	L1TxHash     string `json:"l1_tx_hash,omitempty"`
	Status       string `json:"status"`
	Timestamp    int64  `json:"timestamp"`
	ConfirmedAt  int64  `json:"confirmed_at,omitempty"`
}

type DepositHistoryResponse struct {
	Deposits []DepositEntry `json:"deposits"`
	Total    int64          `json:"total"`
}

type WithdrawEntry struct {
	WithdrawID   string `json:"withdraw_id"`
	AccountIndex int64  `json:"account_index"`
	Amount       string `json:"amount"`
	Token        string `json:"token"`
	Recipient    string `json:"recipient"`
	TxHash       string `json:"tx_hash"`
	L1TxHash     string `json:"l1_tx_hash,omitempty"`
	Status       string `json:"status"`
	Timestamp    int64  `json:"timestamp"`
	ConfirmedAt  int64  `json:"confirmed_at,omitempty"`
}

type WithdrawHistoryResponse struct {
	Withdrawals []WithdrawEntry `json:"withdrawals"`
	Total       int64           `json:"total"`
}

type TransferEntry struct {
	TransferID       string `json:"transfer_id"`
	FromAccountIndex int64  `json:"from_account_index"`
	ToAccountIndex   int64  `json:"to_account_index"`
	Amount           string `json:"amount"`
	Token            string `json:"token"`
	TxHash           string `json:"tx_hash"`
	Timestamp        int64  `json:"timestamp"`
}

type TransferHistoryResponse struct {
	Transfers []TransferEntry `json:"transfers"`
	Total     int64           `json:"total"`
}

// ---- 行情接口 ----

// CandlesticksRequest 为 /candlesticks 查询条件。
type CandlesticksRequest struct {
	MarketID  int64
	Interval  string
	StartTime int64
	EndTime   int64
	Limit     int
}

type Candlestick struct {
	Timestamp int64  `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
	NumTrades int64  `json:"num_trades,omitempty"`
}

type CandlesticksResponse struct {
	MarketID     int64         `json:"market_id"`
	Interval     string        `json:"interval"`
	Candlesticks []Candlestick `json:"candlesticks"`
}

type FundingsRequest struct {
	MarketID  int64
	StartTime int64
	EndTime   int64
	Limit     int
}

type FundingRate struct {
	MarketID    int64  `json:"market_id"`
	Timestamp   int64  `json:"timestamp"`
	FundingRate string `json:"funding_rate"`
	IndexPrice  string `json:"index_price"`
	MarkPrice   string `json:"mark_price"`
}

type FundingsResponse struct {
	MarketID int64         `json:"market_id"`
	Fundings []FundingRate `json:"fundings"`
}

type CurrentFundingRate struct {
	MarketID             int64  `json:"market_id"`
	MarketSymbol         string `json:"market_symbol"`
	CurrentFundingRate   string `json:"current_funding_rate"`
	PredictedFundingRate string `json:"predicted_funding_rate"`
	NextFundingTime      int64  `json:"next_funding_time"`
	IndexPrice           string `json:"index_price"`
	MarkPrice            string `json:"mark_price"`
}

type FundingRatesResponse struct {
	FundingRates []CurrentFundingRate `json:"funding_rates"`
}

type FastBridgeInfoResponse struct {
	SupportedChains []ChainInfo   `json:"supported_chains"`
	Bridges         []BridgeRoute `json:"bridges"`
}

type ChainInfo struct {
	ChainID     string `json:"chain_id"`
	ChainName   string `json:"chain_name"`
	NativeToken string `json:"native_token"`
}

type BridgeRoute struct {
	FromChain     string `json:"from_chain"`
	ToChain       string `json:"to_chain"`
	MinAmount     string `json:"min_amount"`
	MaxAmount     string `json:"max_amount"`
	EstimatedTime int64  `json:"estimated_time"`
	FeePercentage string `json:"fee_percentage"`
}

// ---- 订单簿接口 ----

type OrderBookMetadata struct {
	MarketID          int64  `json:"market_id"`
	Symbol            string `json:"symbol"`
	BaseToken         string `json:"base_token"`
	QuoteToken        string `json:"quote_token"`
	MinOrderSize      string `json:"min_order_size"`
	MinOrderSizeBase  string `json:"min_order_size_base"`
	MinOrderSizeQuote string `json:"min_order_size_quote"`
	SizeDecimals      int    `json:"size_decimals"`
	PriceDecimals     int    `json:"price_decimals"`
	QuoteDecimals     int    `json:"quote_decimals"`
	TakerFee          string `json:"taker_fee"`
	MakerFee          string `json:"maker_fee"`
	Status            string `json:"status"`
}

type OrderBooksResponse struct {
	OrderBooks []OrderBookMetadata `json:"order_books"`
}

type PriceLevel struct {
	Price     string `json:"price"`
	Size      string `json:"size"`
	NumOrders int    `json:"num_orders,omitempty"`
}

type OrderBookDetailsResponse struct {
	MarketID  int64        `json:"market_id"`
	Symbol    string       `json:"symbol"`
	Timestamp int64        `json:"timestamp"`
	Bids      []PriceLevel `json:"bids"`
	Asks      []PriceLevel `json:"asks"`
	LastPrice string       `json:"last_price,omitempty"`
	High24h   string       `json:"high_24h,omitempty"`
	Low24h    string       `json:"low_24h,omitempty"`
	Volume24h string       `json:"volume_24h,omitempty"`
}

type Trade struct {
	TradeID      string `json:"trade_id"`
	MarketID     int64  `json:"market_id"`
	Price        string `json:"price"`
	Size         string `json:"size"`
	Side         string `json:"side"`
	Timestamp    int64  `json:"timestamp"`
	MakerOrderID string `json:"maker_order_id,omitempty"`
	TakerOrderID string `json:"taker_order_id,omitempty"`
}

type RecentTradesResponse struct {
	MarketID int64   `json:"market_id"`
	Trades   []Trade `json:"trades"`
}

type TradesRequest struct {
	MarketID     *int64
	AccountIndex *int64
	StartTime    int64
	EndTime      int64
	Limit        int
	Offset       int
}

type TradesResponse struct {
	Trades []Trade `json:"trades"`
	Total  int64   `json:"total"`
}

type ExchangeStatsResponse struct {
	MarketID                int64  `json:"market_id,omitempty"`
	Volume24h               string `json:"volume_24h"`
	High24h                 string `json:"high_24h"`
	Low24h                  string `json:"low_24h"`
	PriceChange24h          string `json:"price_change_24h"`
	PriceChangePercentage24 string `json:"price_change_percentage_24h"`
	NumTrades24h            int64  `json:"num_trades_24h"`
	OpenInterest            string `json:"open_interest,omitempty"`
	FundingRate             string `json:"funding_rate,omitempty"`
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	OrderNonce    uint64 `json:"order_nonce"`
	AccountIndex  int64  `json:"account_index"`
	MarketID      int64  `json:"market_id"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	TimeInForce   string `json:"time_in_force"`
	Price         string `json:"price"`
	Size          string `json:"size"`
	FilledSize    string `json:"filled_size"`
	RemainingSize string `json:"remaining_size"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

type AccountOrdersRequest struct {
	AccountIndex int64
	MarketID     *int64
	StartTime    int64
	EndTime      int64
	Limit        int
	Offset       int
	Auth         string
}

type AccountOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

// ---- 账户接口 ----

type Position struct {
	MarketID          int64  `json:"market_id"`
	MarketSymbol      string `json:"market_symbol,omitempty"`
	Direction         int    `json:"direction"`
	Size              string `json:"size"`
	AverageEntryPrice string `json:"average_entry_price"`
	PositionValue     string `json:"position_value"`
	UnrealizedPnL     string `json:"unrealized_pnl"`
	RealizedPnL       string `json:"realized_pnl"`
	OpenOrderCount    int    `json:"open_order_count"`
	LiquidationPrice  string `json:"liquidation_price,omitempty"`
	Leverage          string `json:"leverage,omitempty"`
	Margin            string `json:"margin,omitempty"`
}

type AccountResponse struct {
	AccountIndex int64      `json:"account_index"`
	L1Address    string     `json:"l1_address"`
	Status       int        `json:"status"`
	Collateral   string     `json:"collateral"`
	Positions    []Position `json:"positions"`
	CreatedAt    int64      `json:"created_at,omitempty"`
	UpdatedAt    int64      `json:"updated_at,omitempty"`
}

type AccountInfo struct {
	AccountIndex int64 `json:"account_index"`
	Status       int   `json:"status"`
	CreatedAt    int64 `json:"created_at"`
}

type AccountsByL1AddressResponse struct {
	L1Address string        `json:"l1_address"`
	Accounts  []AccountInfo `json:"accounts"`
}

type ApiKey struct {
	KeyID       string   `json:"key_id"`
	PublicKey   string   `json:"public_key"`
	CreatedAt   int64    `json:"created_at"`
	ExpiresAt   int64    `json:"expires_at,omitempty"`
	Permissions []string `json:"permissions"`
}

type ApiKeysResponse struct {
	Keys []ApiKey `json:"keys"`
}

type PnLRequest struct {
	AccountIndex int64
	StartTime    int64
	EndTime      int64
}

type PnLEntry struct {
	Timestamp     int64  `json:"timestamp"`
	RealizedPnL   string `json:"realized_pnl"`
	UnrealizedPnL string `json:"unrealized_pnl"`
	TotalPnL      string `json:"total_pnl"`
}

type PnLResponse struct {
	AccountIndex  int64      `json:"account_index"`
	RealizedPnL   string     `json:"realized_pnl"`
	UnrealizedPnL string     `json:"unrealized_pnl"`
	TotalPnL      string     `json:"total_pnl"`
	PnLHistory    []PnLEntry `json:"pnl_history"`
}

// ---- 浏览器接口 ----

type ExplorerLog struct {
	LogID       string                 `json:"log_id"`
	EventType   string                 `json:"event_type"`
	Data        map[string]interface{} `json:"data"`
	Timestamp   int64                  `json:"timestamp"`
	BlockNumber int64                  `json:"block_number"`
	TxHash      string                 `json:"tx_hash"`
}

type ExplorerAccountLogsResponse struct {
	AccountIndex int64         `json:"account_index"`
	Logs         []ExplorerLog `json:"logs"`
	Total        int64         `json:"total"`
}

type ExplorerPosition struct {
	MarketID         int64  `json:"market_id"`
	MarketSymbol     string `json:"market_symbol"`
	Size             string `json:"size"`
	EntryPrice       string `json:"entry_price"`
	CurrentPrice     string `json:"current_price"`
	UnrealizedPnL    string `json:"unrealized_pnl"`
	RealizedPnL      string `json:"realized_pnl"`
	LiquidationPrice string `json:"liquidation_price,omitempty"`
}

type ExplorerAccountPositionsResponse struct {
	AccountIndex int64              `json:"account_index"`
	Positions    []ExplorerPosition `json:"positions"`
}

type ExplorerBatch struct {
	BatchID         string `json:"batch_id"`
	BlockNumber     int64  `json:"block_number"`
	NumTransactions int    `json:"num_transactions"`
	Timestamp       int64  `json:"timestamp"`
	Status          string `json:"status"`
}

type ExplorerBatchesResponse struct {
	Batches []ExplorerBatch `json:"batches"`
	Total   int64           `json:"total"`
}

type ExplorerBatchResponse struct {
	BatchID      string   `json:"batch_id"`
	BlockNumber  int64    `json:"block_number"`
	Transactions []string `json:"transactions"`
	Timestamp    int64    `json:"timestamp"`
	Status       string   `json:"status"`
}

type ExplorerBlock struct {
	BlockNumber     int64  `json:"block_number"`
	BlockHash       string `json:"block_hash"`
	ParentHash      string `json:"parent_hash"`
	Timestamp       int64  `json:"timestamp"`
	NumTransactions int    `json:"num_transactions"`
	NumBatches      int    `json:"num_batches"`
}

type ExplorerBlocksResponse struct {
	Blocks []ExplorerBlock `json:"blocks"`
	Total  int64           `json:"total"`
}

type ExplorerBlockResponse struct {
	BlockNumber  int64    `json:"block_number"`
	BlockHash    string   `json:"block_hash"`
	ParentHash   string   `json:"parent_hash"`
	Timestamp    int64    `json:"timestamp"`
	Transactions []string `json:"transactions"`
	Batches      []string `json:"batches"`
	StateRoot    string   `json:"state_root"`
}

type ExplorerMarket struct {
	MarketID  int64  `json:"market_id"`
	Symbol    string `json:"symbol"`
	Status    string `json:"status"`
	Volume24h string `json:"volume_24h,omitempty"`
}

type ExplorerMarketsResponse struct {
	Markets []ExplorerMarket `json:"markets"`
}

type ExplorerSearchResponse struct {
	Results []map[string]interface{} `json:"results"`
}

type ExplorerStatsResponse struct {
	Period            string `json:"period,omitempty"`
	TotalTransactions int64  `json:"total_transactions"`
	TotalAccounts     int64  `json:"total_accounts"`
	TotalVolume       string `json:"total_volume"`
	TotalBlocks       int64  `json:"total_blocks"`
}
