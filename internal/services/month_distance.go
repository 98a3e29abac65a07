package services

import "github.com/terraincognita07/rangepicker/internal/models"

// SignedMonthDistance is positive when to lies after from.
func SignedMonthDistance(from models.MonthKey, to models.MonthKey) int {
	return to.Index() - from.Index()
}

// MonthDistance is the whole number of months between a and b, 0 for the same month.
func MonthDistance(a models.MonthKey, b models.MonthKey) int {
	distance := SignedMonthDistance(a, b)
	if distance < 0 {
		return -distance
	}
	return distance
}
