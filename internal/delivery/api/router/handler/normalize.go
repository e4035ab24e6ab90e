package handler

import "storerating/internal/util"

// Normalize collapses whitespace so length rules apply to the stored form.
func (req *RegisterRequest) Normalize() {
	req.Name = util.NormalizeText(req.Name)
	req.Email = util.NormalizeEmail(req.Email)
	req.Address = util.NormalizeText(req.Address)
}

func (req *CreateUserRequest) Normalize() {
	req.Name = util.NormalizeText(req.Name)
	req.Email = util.NormalizeEmail(req.Email)
	req.Address = util.NormalizeText(req.Address)
}

func (req *CreateStoreRequest) Normalize() {
	req.Name = util.NormalizeText(req.Name)
	req.Email = util.NormalizeEmail(req.Email)
	req.Address = util.NormalizeText(req.Address)
}
