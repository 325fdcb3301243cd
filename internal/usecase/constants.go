package usecase

// Account names the journal templates post against. These mirror the
// books this system keeps: a sole-proprietor chart with owner loan
// accounts, consumption-tax clearing accounts, and carry-over
// counterpart accounts.
const (
	accountBank          = "普通預金"       // ordinary bank deposit
	accountOwnerCredit   = "事業主借"       // owed to owner
	accountOwnerDebit    = "事業主貸"       // owed by owner
	accountPayable       = "買掛金"        // accounts payable
	accountPrepaid       = "前払金"        // prepayments
	accountReceivable    = "売掛金"        // accounts receivable
	accountAdvance       = "前受金"        // advances received
	accountAccrued       = "未収金"        // accrued income
	accountUnpaid        = "未払金"        // accrued expenses
	accountTaxPaid       = "仮払消費税"    // consumption tax paid
	accountTaxReceived   = "仮受消費税"    // consumption tax received
	accountProfitLoss    = "損益"          // profit and loss clearing
	accountCapital       = "資本金"        // capital
	accountCarryInDebit  = "(前期繰越(借方勘定用))"
	accountCarryInCredit = "(前期繰越(貸方勘定用))"
	accountCarryToDebit  = "(次期繰越(借方勘定用))"
	accountCarryToCredit = "(次期繰越(貸方勘定用))"
)

const chartCacheKey = "accounts:all"
