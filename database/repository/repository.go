package repository

import (
	auditRepo "homestay/database/repository/audit"
	bookingRepo "homestay/database/repository/booking"
	favoriteRepo "homestay/database/repository/favorite"
	listingRepo "homestay/database/repository/listing"
	profileRepo "homestay/database/repository/profile"
	reviewRepo "homestay/database/repository/review"
	staffRepo "homestay/database/repository/staff"
	userRepo "homestay/database/repository/user"
)

// Re-export the repository interfaces and constructors so callers can wire
// everything from a single import.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

type ListingRepository = listingRepo.ListingRepository

var NewMongoListingRepo = listingRepo.NewMongoListingRepo

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type ReviewRepository = reviewRepo.ReviewRepository

var NewMongoReviewRepo = reviewRepo.NewMongoReviewRepo

type StaffRepository = staffRepo.StaffRepository

var NewMongoStaffRepo = staffRepo.NewMongoStaffRepo

type AuditRepository = auditRepo.AuditRepository

var NewMongoAuditRepo = auditRepo.NewMongoAuditRepo

type ProfileRepository = profileRepo.ProfileRepository

var NewMongoProfileRepo = profileRepo.NewMongoProfileRepo

type FavoriteRepository = favoriteRepo.FavoriteRepository

var NewMongoFavoriteRepo = favoriteRepo.NewMongoFavoriteRepo
