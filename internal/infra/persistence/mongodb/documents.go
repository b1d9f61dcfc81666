package mongodb

import (
	"time"

	"hostelbites/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	PhotoURL  string             `bson:"photoURL,omitempty"`
	Role      string             `bson:"role"`
	Badge     *string            `bson:"badge,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toUserDocument(u *entity.User) *userDocument {
	return &userDocument{
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role.String(),
		Badge:     u.Badge,
		CreatedAt: u.CreatedAt,
	}
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Name:      d.Name,
		PhotoURL:  d.PhotoURL,
		Role:      entity.Role(d.Role),
		Badge:     d.Badge,
		CreatedAt: d.CreatedAt,
	}
}

type reviewDocument struct {
	AuthorEmail string    `bson:"authorEmail"`
	AuthorName  string    `bson:"authorName"`
	Text        string    `bson:"text"`
	Rating      int       `bson:"rating"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func toReviewDocument(r entity.Review) reviewDocument {
	return reviewDocument{
		AuthorEmail: r.AuthorEmail,
		AuthorName:  r.AuthorName,
		Text:        r.Text,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}
}

func (d reviewDocument) toDomain() entity.Review {
	return entity.Review{
		AuthorEmail: d.AuthorEmail,
		AuthorName:  d.AuthorName,
		Text:        d.Text,
		Rating:      d.Rating,
		CreatedAt:   d.CreatedAt,
	}
}

type mealDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Category         string             `bson:"category"`
	Price            float64            `bson:"price"`
	Description      string             `bson:"description,omitempty"`
	Image            string             `bson:"image,omitempty"`
	Ingredients      []string           `bson:"ingredients,omitempty"`
	DistributorEmail string             `bson:"distributorEmail,omitempty"`
	Rating           float64            `bson:"rating"`
	Likes            []string           `bson:"likes"`
	Reviews          []reviewDocument   `bson:"reviews"`
	PostedAt         time.Time          `bson:"postedAt"`
}

func toMealDocument(m *entity.Meal) *mealDocument {
	doc := &mealDocument{
		Title:            m.Title,
		Category:         m.Category,
		Price:            m.Price,
		Description:      m.Description,
		Image:            m.Image,
		Ingredients:      m.Ingredients,
		DistributorEmail: m.DistributorEmail,
		Rating:           m.Rating,
		Likes:            m.Likes,
		Reviews:          make([]reviewDocument, 0, len(m.Reviews)),
		PostedAt:         m.PostedAt,
	}
	// $addToSet and $push need arrays, never null.
	if doc.Likes == nil {
		doc.Likes = []string{}
	}
	for _, r := range m.Reviews {
		doc.Reviews = append(doc.Reviews, toReviewDocument(r))
	}

	return doc
}

func (d *mealDocument) toDomain() *entity.Meal {
	meal := &entity.Meal{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Category:         d.Category,
		Price:            d.Price,
		Description:      d.Description,
		Image:            d.Image,
		Ingredients:      d.Ingredients,
		DistributorEmail: d.DistributorEmail,
		Rating:           d.Rating,
		Likes:            d.Likes,
		Reviews:          make([]entity.Review, 0, len(d.Reviews)),
		PostedAt:         d.PostedAt,
	}
	if meal.Likes == nil {
		meal.Likes = []string{}
	}
	for _, r := range d.Reviews {
		meal.Reviews = append(meal.Reviews, r.toDomain())
	}

	return meal
}

type packageDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Price    int64              `bson:"price"`
	Level    int                `bson:"level"`
	Benefits []string           `bson:"benefits,omitempty"`
}

func (d *packageDocument) toDomain() *entity.Package {
	return &entity.Package{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Price:    d.Price,
		Level:    d.Level,
		Benefits: d.Benefits,
	}
}

type paymentDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail     string             `bson:"userEmail"`
	PackageName   string             `bson:"packageName"`
	Amount        int64              `bson:"amount"`
	PaymentMethod string             `bson:"paymentMethod"`
	TransactionID string             `bson:"transactionId"`
	PaidAt        time.Time          `bson:"paidAt"`
}

func (d *paymentDocument) toDomain() *entity.Payment {
	return &entity.Payment{
		ID:            d.ID.Hex(),
		UserEmail:     d.UserEmail,
		PackageName:   d.PackageName,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		TransactionID: d.TransactionID,
		PaidAt:        d.PaidAt,
	}
}

type mealRequestDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	MealID      primitive.ObjectID `bson:"mealId"`
	UserEmail   string             `bson:"userEmail"`
	UserName    string             `bson:"userName"`
	Status      string             `bson:"status"`
	RequestedAt time.Time          `bson:"requestedAt"`
}

func (d *mealRequestDocument) toDomain() *entity.MealRequest {
	return &entity.MealRequest{
		ID:          d.ID.Hex(),
		MealID:      d.MealID.Hex(),
		UserEmail:   d.UserEmail,
		UserName:    d.UserName,
		Status:      entity.MealRequestStatus(d.Status),
		RequestedAt: d.RequestedAt,
	}
}

// mealRequestViewDocument is the shape produced by the request/meal join pipeline.
type mealRequestViewDocument struct {
	RequestID   primitive.ObjectID `bson:"requestId"`
	MealID      primitive.ObjectID `bson:"mealId"`
	UserEmail   string             `bson:"userEmail"`
	UserName    string             `bson:"userName"`
	Status      string             `bson:"status"`
	RequestedAt time.Time          `bson:"requestedAt"`
	Title       string             `bson:"title"`
	LikeCount   int                `bson:"likeCount"`
	ReviewCount int                `bson:"reviewCount"`
}

func (d *mealRequestViewDocument) toDomain() *entity.MealRequestView {
	return &entity.MealRequestView{
		RequestID:   d.RequestID.Hex(),
		MealID:      d.MealID.Hex(),
		UserEmail:   d.UserEmail,
		UserName:    d.UserName,
		Status:      entity.MealRequestStatus(d.Status),
		RequestedAt: d.RequestedAt,
		Title:       d.Title,
		LikeCount:   d.LikeCount,
		ReviewCount: d.ReviewCount,
	}
}

// userReviewDocument is the shape produced by the reviews-by-author pipeline.
type userReviewDocument struct {
	MealID    primitive.ObjectID `bson:"mealId"`
	MealTitle string             `bson:"mealTitle"`
	LikeCount int                `bson:"likeCount"`
	Review    reviewDocument     `bson:"review"`
}

func (d *userReviewDocument) toDomain() *entity.UserReview {
	return &entity.UserReview{
		MealID:    d.MealID.Hex(),
		MealTitle: d.MealTitle,
		LikeCount: d.LikeCount,
		Review:    d.Review.toDomain(),
	}
}
