package models

import "time"

// Content status constants
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// Media type constants
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
	MediaTypeText  = "text"
)

// Enhancement type constants
const (
	EnhancementFilter  = "filter"
	EnhancementEffect  = "effect"
	EnhancementOverlay = "overlay"
	EnhancementText    = "text"
	EnhancementAudio   = "audio"
	EnhancementCustom  = "custom"
)

// Transaction type constants
const (
	TxTypeRevenueShare        = "revenue_share"
	TxTypeEnhancementPurchase = "enhancement_purchase"
	TxTypeRemixPayment        = "remix_payment"
	TxTypePlatformFee         = "platform_fee"
)

// Transaction status constants
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Engagement type constants
const (
	EngagementLike    = "like"
	EngagementComment = "comment"
	EngagementShare   = "share"
	EngagementRemix   = "remix"
	EngagementEnhance = "enhance"
)

// Poll status constants
const (
	PollStatusActive = "active"
	PollStatusEnded  = "ended"
)

// Notification type constants
const (
	NotifRevenueReceived    = "revenue_received"
	NotifContentRemixed     = "content_remixed"
	NotifEnhancementApplied = "enhancement_applied"
	NotifPollEnded          = "poll_ended"
	NotifSystem             = "system"
)

// Domain types

type Creator struct {
	CreatorID              string            `json:"creatorId"`
	WalletAddress          string            `json:"walletAddress"`
	DisplayName            string            `json:"displayName"`
	Bio                    string            `json:"bio"`
	RevenueSharePercentage float64           `json:"revenueSharePercentage"`
	TotalRevenue           float64           `json:"totalRevenue"`
	TotalContent           int               `json:"totalContent"`
	FollowersCount         int               `json:"followersCount"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
	SocialLinks            map[string]string `json:"socialLinks,omitempty"`
}

type ContentPiece struct {
	ContentID              string    `json:"contentId"`
	CreatorID              string    `json:"creatorId"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	MediaURL               string    `json:"mediaUrl"`
	MediaType              string    `json:"mediaType"`
	CreationTimestamp      time.Time `json:"creationTimestamp"`
	MonetizationEnabled    bool      `json:"monetizationEnabled"`
	CurrentRevenue         float64   `json:"currentRevenue"`
	RevenueSharePercentage float64   `json:"revenueSharePercentage"`
	Tags                   []string  `json:"tags"`
	Category               string    `json:"category"`
	IsRemix                bool      `json:"isRemix"`
	OriginalContentID      string    `json:"originalContentId,omitempty"`
	RemixCount             int       `json:"remixCount"`
	EngagementCount        int       `json:"engagementCount"`
	Status                 string    `json:"status"`
}

type Remix struct {
	RemixID                string    `json:"remixId"`
	OriginalContentID      string    `json:"originalContentId"`
	RemixingCreatorID      string    `json:"remixingCreatorId"`
	RemixContentURL        string    `json:"remixContentUrl"`
	RemixTimestamp         time.Time `json:"remixTimestamp"`
	RevenueSharePercentage float64   `json:"revenueSharePercentage"`
	Description            string    `json:"description"`
	Approved               bool      `json:"approved"`
}

type Enhancement struct {
	EnhancementID      string    `json:"enhancementId"`
	ContentID          string    `json:"contentId"`
	AppliedByCreatorID string    `json:"appliedByCreatorId"`
	EnhancementType    string    `json:"enhancementType"`
	EnhancementDetails string    `json:"enhancementDetails"`
	AppliedTimestamp   time.Time `json:"appliedTimestamp"`
	Cost               float64   `json:"cost"`
	Approved           bool      `json:"approved"`
}

type Transaction struct {
	TransactionID   string    `json:"transactionId"`
	FromWallet      string    `json:"fromWallet"`
	ToWallet        string    `json:"toWallet"`
	Amount          float64   `json:"amount"`
	Timestamp       time.Time `json:"timestamp"`
	ContentID       string    `json:"contentId"`
	TransactionType string    `json:"transactionType"`
	Status          string    `json:"status"`
}

type Engagement struct {
	EngagementID   string    `json:"engagementId"`
	ContentID      string    `json:"contentId"`
	UserID         string    `json:"userId"`
	EngagementType string    `json:"engagementType"`
	Timestamp      time.Time `json:"timestamp"`
}

// CommunityPoll's Votes map is the vote ledger: one entry per voter,
// mapping voter ID to the chosen option index. An entry is never
// overwritten once recorded.
type CommunityPoll struct {
	PollID    string         `json:"pollId"`
	CreatorID string         `json:"creatorId"`
	ContentID string         `json:"contentId,omitempty"`
	Question  string         `json:"question"`
	Options   []string       `json:"options"`
	Votes     map[string]int `json:"votes"`
	EndTime   time.Time      `json:"endTime"`
	CreatedAt time.Time      `json:"createdAt"`
	Status    string         `json:"status"`
}

type Notification struct {
	NotificationID string    `json:"notificationId"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
	ActionURL      string    `json:"actionUrl,omitempty"`
}

// Request types

type CreateCreatorRequest struct {
	CreatorID              string  `json:"creatorId" validate:"required,max=100"`
	WalletAddress          string  `json:"walletAddress" validate:"max=100"`
	DisplayName            string  `json:"displayName" validate:"required,max=100"`
	Bio                    string  `json:"bio" validate:"max=500"`
	RevenueSharePercentage float64 `json:"revenueSharePercentage" validate:"gte=0,lte=100"`
}

type CreateContentRequest struct {
	Title                  string   `json:"title" validate:"required,max=100"`
	Description            string   `json:"description" validate:"required,max=500"`
	MediaURL               string   `json:"mediaUrl" validate:"required,url"`
	MediaType              string   `json:"mediaType" validate:"required,oneof=image video audio text"`
	MonetizationEnabled    bool     `json:"monetizationEnabled"`
	RevenueSharePercentage float64  `json:"revenueSharePercentage" validate:"gte=0,lte=100"`
	Tags                   []string `json:"tags" validate:"max=10,dive,required,max=40"`
	Category               string   `json:"category" validate:"required,max=50"`
}

// UpdateContentRequest lists exactly the fields a caller may change.
// Identity and creation-time fields are absent on purpose: a payload
// carrying contentId or creationTimestamp has nowhere to land.
type UpdateContentRequest struct {
	Title                  *string   `json:"title" validate:"omitempty,max=100"`
	Description            *string   `json:"description" validate:"omitempty,max=500"`
	MediaURL               *string   `json:"mediaUrl" validate:"omitempty,url"`
	MediaType              *string   `json:"mediaType" validate:"omitempty,oneof=image video audio text"`
	MonetizationEnabled    *bool     `json:"monetizationEnabled"`
	RevenueSharePercentage *float64  `json:"revenueSharePercentage" validate:"omitempty,gte=0,lte=100"`
	Tags                   *[]string `json:"tags" validate:"omitempty,max=10,dive,required,max=40"`
	Category               *string   `json:"category" validate:"omitempty,max=50"`
	Status                 *string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpdateRevenueShareRequest struct {
	RevenueSharePercentage float64 `json:"revenueSharePercentage" validate:"gte=0,lte=100"`
}

// Remix proposals carry a narrower share band than original content.
type CreateRemixRequest struct {
	OriginalContentID      string  `json:"originalContentId" validate:"required"`
	RemixContentURL        string  `json:"remixContentUrl" validate:"required,url"`
	Description            string  `json:"description" validate:"required,max=300"`
	RevenueSharePercentage float64 `json:"revenueSharePercentage" validate:"gte=0,lte=50"`
}

type CreateEnhancementRequest struct {
	ContentID          string  `json:"contentId" validate:"required"`
	EnhancementType    string  `json:"enhancementType" validate:"required,oneof=filter effect overlay text audio custom"`
	EnhancementDetails string  `json:"enhancementDetails" validate:"required,max=200"`
	Cost               float64 `json:"cost" validate:"gte=0"`
}

type CreateTransactionRequest struct {
	FromWallet      string  `json:"fromWallet" validate:"required,max=100"`
	ToWallet        string  `json:"toWallet" validate:"required,max=100"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	ContentID       string  `json:"contentId" validate:"required"`
	TransactionType string  `json:"transactionType" validate:"required,oneof=revenue_share enhancement_purchase remix_payment platform_fee"`
	Status          string  `json:"status" validate:"required,oneof=pending completed failed"`
}

type CreateEngagementRequest struct {
	ContentID      string `json:"contentId" validate:"required"`
	EngagementType string `json:"engagementType" validate:"required,oneof=like comment share remix enhance"`
}

type CreatePollRequest struct {
	ContentID string   `json:"contentId"`
	Question  string   `json:"question" validate:"required,max=300"`
	Options   []string `json:"options" validate:"min=2,max=10,dive,required,max=100"`
	EndTime   int64    `json:"endTime" validate:"required"` // unix millis
}

type VoteRequest struct {
	OptionIndex int `json:"optionIndex" validate:"gte=0"`
}

// Frame webhook types

type FrameRequest struct {
	UntrustedData FrameData   `json:"untrustedData"`
	TrustedData   FrameSigned `json:"trustedData"`
}

type FrameData struct {
	FID         int64  `json:"fid"`
	URL         string `json:"url"`
	MessageHash string `json:"messageHash"`
	Timestamp   int64  `json:"timestamp"` // unix seconds
	Network     int    `json:"network"`
	ButtonIndex int    `json:"buttonIndex"`
	InputText   string `json:"inputText,omitempty"`
	State       string `json:"state,omitempty"`
}

type FrameSigned struct {
	MessageBytes string `json:"messageBytes"`
}

// Response types

type VoteResponse struct {
	PollID      string `json:"pollId"`
	OptionIndex int    `json:"optionIndex"`
	Message     string `json:"message"`
}

type PollResults struct {
	PollID     string   `json:"pollId"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Tally      []int    `json:"tally"`
	TotalVotes int      `json:"totalVotes"`
	Status     string   `json:"status"`
}

type ContentAnalytics struct {
	ContentID    string  `json:"contentId"`
	Views        int     `json:"views"`
	Engagement   int     `json:"engagement"`
	Revenue      float64 `json:"revenue"`
	Remixes      int     `json:"remixes"`
	Enhancements int     `json:"enhancements"`
}

type RevenueStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	ActiveCreators    int     `json:"activeCreators"`
	TotalContent      int     `json:"totalContent"`
	TotalTransactions int     `json:"totalTransactions"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type FeedResponse struct {
	Content    []ContentPiece `json:"content"`
	Pagination Pagination     `json:"pagination"`
}

type FrameActionResponse struct {
	Message       string   `json:"message"`
	ContentID     string   `json:"contentId,omitempty"`
	PollID        string   `json:"pollId,omitempty"`
	RemixID       string   `json:"remixId,omitempty"`
	EnhancementID string   `json:"enhancementId,omitempty"`
	OptionIndex   *int     `json:"optionIndex,omitempty"`
	CurrentShare  *float64 `json:"currentPercentage,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
