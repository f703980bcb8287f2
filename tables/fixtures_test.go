package tables

// Canonical sources, as the formatters write them.

const evolutionCanonical = `const struct Evolution gEvolutionTable[NUM_SPECIES][EVOS_PER_MON] =
{
    [SPECIES_BULBASAUR]  = {{EVO_LEVEL, 16, SPECIES_IVYSAUR}},
    [SPECIES_GLOOM]      = {{EVO_ITEM, ITEM_LEAF_STONE, SPECIES_VILEPLUME},
                            {EVO_ITEM, ITEM_SUN_STONE, SPECIES_BELLOSSOM}},
    [SPECIES_EEVEE]      = {{EVO_FRIENDSHIP_DAY, 0, SPECIES_ESPEON}},
    [SPECIES_FEEBAS]     = {{EVO_BEAUTY, 170, SPECIES_MILOTIC}},
    [SPECIES_WURMPLE]    = {{EVO_LEVEL_SILCOON, 7, SPECIES_SILCOON},
                            {EVO_LEVEL_CASCOON, 7, SPECIES_CASCOON}},
    [SPECIES_CUSTOM]     = {{EVO_MAPSEC, MAPSEC_ROUTE_1, SPECIES_CUSTOM_TWO}},
    [SPECIES_PIDGEY]     = {0},
};`

const tmhmCanonical = `#define TMHM_LEARNSET(moves) {(u32)(moves), ((u64)(moves) >> 32)}
#define TMHM(tmhm) ((u64)1 << (ITEM_##tmhm - ITEM_TM01_FOCUS_PUNCH))

// This table determines which TMs and HMs a species is capable of learning.
// Each entry is a 64-bit bit array spread across two 32-bit values, with
// each bit corresponding to a .
const u32 gTMHMLearnsets[][2] =
{
    [SPECIES_NONE]       = {(0), (0)},
    [SPECIES_BULBASAUR]  = TMHM_LEARNSET(TMHM(TM06_TOXIC)
                                       | TMHM(TM09_BULLET_SEED)
                                       | TMHM(HM05_FLASH)),
    [SPECIES_MEW]        = TMHM_LEARNSET(TMHM(TM50_OVERHEAT))
};`

const tutorCanonical = `const u16 gTutorMoves[TUTOR_MOVE_COUNT] =
{
    [TUTOR_MOVE_MEGA_PUNCH] = MOVE_MEGA_PUNCH,
    [TUTOR_MOVE_SWORDS_DANCE] = MOVE_SWORDS_DANCE
};

#define TUTOR(move) (1u << (TUTOR_##move))

static const u32 sTutorLearnsets[] =
{
    [SPECIES_NONE]       = (0),

    [SPECIES_BULBASAUR]  = (TUTOR(MOVE_SWORDS_DANCE)
                          | TUTOR(MOVE_MEGA_PUNCH))
};`
