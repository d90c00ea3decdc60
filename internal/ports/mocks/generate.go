//go:generate mockgen -source=../inventory_repository.go -destination=./mock_inventory_repository.go -package=mocks
//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../list_cache.go           -destination=./mock_list_cache.go           -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../inventory_service.go    -destination=./mock_inventory_service.go    -package=mocks
//go:generate mockgen -source=../order_service.go        -destination=./mock_order_service.go        -package=mocks

package mocks
