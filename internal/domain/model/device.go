package model

// Device is a physical or logical device deployed at a Location and owned by
// an APIUser. Both references are mandatory.
type Device struct {
	ID         DeviceID
	Name       string
	Type       string
	Login      string
	Password   string
	LocationID LocationID
	APIUserID  APIUserID
}

func NewDevice(name, deviceType, login, password string, locationID LocationID, apiUserID APIUserID) *Device {
	return &Device{
		Name:       name,
		Type:       deviceType,
		Login:      login,
		Password:   password,
		LocationID: locationID,
		APIUserID:  apiUserID,
	}
}

// DevicePatch has one optional field per column. Reference fields must be
// resolved by the caller before Apply.
type DevicePatch struct {
	Name     *string
	Type     *string
	Login    *string
	Password *string
	Location *LocationID
	APIUser  *APIUserID
}

func (p DevicePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Type == nil &&
		p.Login == nil &&
		p.Password == nil &&
		p.Location == nil &&
		p.APIUser == nil
}

func (d *Device) Apply(patch DevicePatch) {
	if patch.Name != nil {
		d.Name = *patch.Name
	}

	if patch.Type != nil {
		d.Type = *patch.Type
	}

	if patch.Login != nil {
		d.Login = *patch.Login
	}

	if patch.Password != nil {
		d.Password = *patch.Password
	}

	if patch.Location != nil {
		d.LocationID = *patch.Location
	}

	if patch.APIUser != nil {
		d.APIUserID = *patch.APIUser
	}
}
