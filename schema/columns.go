/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package schema

// Column ids address data on disk. Once an id ships it keeps its meaning
// forever: a column may be retired, but its id is never handed to another
// column and live columns are never renumbered.

type columnDef struct {
	id   uint32
	name string
}

type columnSet struct {
	defs    []columnDef
	retired []uint32
}

var registry = map[Database]columnSet{
	OnChain: {defs: []columnDef{
		{0, "metadata"},
		{1, "contracts_raw_code"},
		{2, "contracts_state"},
		{3, "contracts_latest_utxo"},
		{4, "contracts_assets"},
		{5, "coins"},
		{6, "transactions"},
		{7, "fuel_blocks"},
		{8, "fuel_block_merkle_data"},
		{9, "fuel_block_merkle_metadata"},
		{10, "contracts_assets_merkle_data"},
		{11, "contracts_assets_merkle_metadata"},
		{12, "contracts_state_merkle_data"},
		{13, "contracts_state_merkle_metadata"},
		{14, "messages"},
		{15, "processed_transactions"},
		{16, "fuel_block_consensus"},
		{17, "consensus_parameters_versions"},
		{18, "state_transition_bytecode_versions"},
		{19, "uploaded_bytecodes"},
		{20, "blobs"},
		// Genesis import progress. Slated to fold into metadata.
		{21, "genesis_metadata"},
	}},

	OffChain: {
		defs: []columnDef{
			{0, "metadata"},
			{1, "genesis_metadata"},
			{2, "owned_coins"},
			{3, "transaction_status"},
			{4, "transactions_by_owner_block_idx"},
			{5, "owned_message_ids"},
			{6, "statistic"},
			{7, "fuel_block_ids_to_heights"},
			{8, "contracts_info"},
			{9, "old_fuel_blocks"},
			{10, "old_fuel_block_consensus"},
			{11, "old_transactions"},
			{12, "relayed_transaction_status"},
			{13, "spent_messages"},
			{23, "coin_balances"},
			{24, "message_balances"},
			{25, "assets_info"},
			{26, "coins_to_spend"},
		},
		retired: []uint32{14, 15, 16, 17, 18, 19, 20, 21, 22},
	},

	// Table columns of the merkleized compression storage. The engine family
	// of a table column is its table id.
	Compression: {defs: []columnDef{
		{0, "compressed_blocks"},
		{1, "address"},
		{2, "asset_id"},
		{3, "contract_id"},
		{4, "script_code"},
		{5, "predicate_code"},
		{6, "registry_index"},
		{7, "evictor_cache"},
		{8, "timestamps"},
	}},

	GasPrice: {defs: []columnDef{
		{0, "metadata"},
		{1, "state"},
		{2, "unrecorded_blocks"},
		{3, "latest_recorded_height"},
	}},

	Relayer: {defs: []columnDef{
		{0, "metadata"},
		{1, "history"},
	}},
}
